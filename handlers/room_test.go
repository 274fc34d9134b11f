package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	roomRepo "wardsched/database/repository/room"
	"wardsched/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRoomRepo struct {
	rooms map[string]models.Room
}

func newFakeRoomRepo(rooms ...models.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: make(map[string]models.Room)}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeRoomRepo) CreateRoom(room *models.Room) error {
	f.rooms[room.ID] = *room
	return nil
}

func (f *fakeRoomRepo) GetRoomByID(roomID string) (*models.Room, error) {
	r, ok := f.rooms[roomID]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return &r, nil
}

func (f *fakeRoomRepo) ListRooms() ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) DeleteRoom(roomID string) error {
	if _, ok := f.rooms[roomID]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	delete(f.rooms, roomID)
	return nil
}

func newRoomTestRouter(repo roomRepo.RoomRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRoomHandler(repo, zap.NewNop())
	r := gin.New()
	r.DELETE("/api/rooms/:id", h.DeleteRoom)
	return r
}

func TestDeleteRoom_RemovesRoom(t *testing.T) {
	repo := newFakeRoomRepo(models.Room{ID: "room-1", Name: "Ward A Room 1", BedCapacity: 2})
	router := newRoomTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/rooms/room-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	_, err := repo.GetRoomByID("room-1")
	assert.ErrorIs(t, err, roomRepo.ErrRoomNotFound)
}

func TestDeleteRoom_UnknownRoomReturns404(t *testing.T) {
	router := newRoomTestRouter(newFakeRoomRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/rooms/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
