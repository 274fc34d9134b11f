package handlers

import (
	"net/http"
	"time"

	roomRepo "wardsched/database/repository/room"
	"wardsched/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoomHandler exposes the minimal room management the scheduler needs.
type RoomHandler struct {
	Repo   roomRepo.RoomRepository
	Logger *zap.Logger
}

func NewRoomHandler(repo roomRepo.RoomRepository, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Repo: repo, Logger: logger}
}

// CreateRoom handles POST /api/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var input models.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}
	if input.BedCapacity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid bed capacity",
			"message": "bed_capacity must be at least 1",
		})
		return
	}

	room := models.Room{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Ward:        input.Ward,
		BedCapacity: input.BedCapacity,
		CreatedAt:   time.Now(),
	}
	if err := h.Repo.CreateRoom(&room); err != nil {
		h.Logger.Error("CreateRoom: failed to create room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create room",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// GetRoom handles GET /api/rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.Repo.GetRoomByID(c.Param("id"))
	if err != nil {
		if err == roomRepo.ErrRoomNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		h.Logger.Error("GetRoom: failed to fetch room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID := c.Param("id")
	if err := h.Repo.DeleteRoom(roomID); err != nil {
		if err == roomRepo.ErrRoomNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		h.Logger.Error("DeleteRoom: failed to delete room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

// ListRooms handles GET /api/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Repo.ListRooms()
	if err != nil {
		h.Logger.Error("ListRooms: failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}
