package roomRepo

import "wardsched/models"

// RoomRepository abstracts room persistence.
type RoomRepository interface {
	CreateRoom(room *models.Room) error
	GetRoomByID(roomID string) (*models.Room, error)
	ListRooms() ([]models.Room, error)
	DeleteRoom(roomID string) error
}
