package roomRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wardsched/database"
	"wardsched/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrRoomNotFound is returned when a room ID resolves to nothing.
var ErrRoomNotFound = errors.New("room not found")

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	roomColl *mongo.Collection
}

// NewMongoRoomRepo constructs a new instance of MongoRoomRepo.
func NewMongoRoomRepo() RoomRepository {
	db := database.MongoClient.Database("wardsched")
	return &MongoRoomRepo{
		roomColl: db.Collection("rooms"),
	}
}

func (repo *MongoRoomRepo) CreateRoom(room *models.Room) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.roomColl.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("error inserting room: %w", err)
	}
	return nil
}

func (repo *MongoRoomRepo) GetRoomByID(roomID string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var room models.Room
	filter := bson.M{"id": roomID}
	if err := repo.roomColl.FindOne(ctx, filter).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("error fetching room with id %s: %w", roomID, err)
	}
	return &room, nil
}

func (repo *MongoRoomRepo) ListRooms() ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.roomColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (repo *MongoRoomRepo) DeleteRoom(roomID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.roomColl.DeleteOne(ctx, bson.M{"id": roomID})
	if err != nil {
		return fmt.Errorf("error deleting room %s: %w", roomID, err)
	}
	if res.DeletedCount == 0 {
		return ErrRoomNotFound
	}
	return nil
}
