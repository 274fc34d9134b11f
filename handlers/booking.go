package handlers

import (
	"net/http"
	"time"

	"wardsched/models"
	"wardsched/services/scheduler"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking placement and occupancy queries.
type BookingHandler struct {
	Scheduler scheduler.SchedulingService
	Logger    *zap.Logger
}

func NewBookingHandler(svc scheduler.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Scheduler: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Error("CreateBooking: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	booking, err := h.Scheduler.RequestBooking(c.Request.Context(), input)
	if err != nil {
		respondSchedulingError(c, h.Logger, "CreateBooking", err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// UpdateBooking handles PATCH /api/bookings/:id (administrative date/note edits).
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	bookingID := c.Param("id")
	var input models.BookingUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	booking, err := h.Scheduler.UpdateBooking(c.Request.Context(), bookingID, input)
	if err != nil {
		respondSchedulingError(c, h.Logger, "UpdateBooking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Scheduler.CancelBooking(c.Request.Context(), bookingID); err != nil {
		respondSchedulingError(c, h.Logger, "CancelBooking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// GetRoomOccupancy handles GET /api/rooms/:id/occupancy?date=YYYY-MM-DD.
// The date defaults to today.
func (h *BookingHandler) GetRoomOccupancy(c *gin.Context) {
	roomID := c.Param("id")

	onDate := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := scheduler.ParseDayKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid date",
				"message": "date must be formatted YYYY-MM-DD",
			})
			return
		}
		onDate = parsed
	}

	summary, err := h.Scheduler.GetRoomOccupancy(roomID, onDate)
	if err != nil {
		respondSchedulingError(c, h.Logger, "GetRoomOccupancy", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWindowGrid handles GET /api/rooms/:id/grid?start=YYYY-MM-DD&end=YYYY-MM-DD.
// With no parameters the window defaults to the next 7 days.
func (h *BookingHandler) GetWindowGrid(c *gin.Context) {
	roomID := c.Param("id")

	start := time.Now()
	end := start.AddDate(0, 0, 6)
	if raw := c.Query("start"); raw != "" {
		parsed, err := scheduler.ParseDayKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid start",
				"message": "start must be formatted YYYY-MM-DD",
			})
			return
		}
		start = parsed
		end = start.AddDate(0, 0, 6)
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := scheduler.ParseDayKey(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid end",
				"message": "end must be formatted YYYY-MM-DD",
			})
			return
		}
		end = parsed
	}

	grid, err := h.Scheduler.GetWindowGrid(c.Request.Context(), roomID, start, end)
	if err != nil {
		respondSchedulingError(c, h.Logger, "GetWindowGrid", err)
		return
	}
	c.JSON(http.StatusOK, grid)
}
