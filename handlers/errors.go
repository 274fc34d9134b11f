package handlers

import (
	"errors"
	"net/http"

	"wardsched/services/scheduler"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondSchedulingError maps scheduler error taxonomy onto HTTP statuses:
// caller mistakes to 400, expected business conflicts to 409 with enough
// detail for an actionable message, missing references to 404, and anything
// else (storage failures included) to 500.
func respondSchedulingError(c *gin.Context, logger *zap.Logger, op string, err error) {
	var vErr *scheduler.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request",
			"field":   vErr.Field,
			"message": vErr.Message,
		})
		return
	}

	var cErr *scheduler.ConflictError
	if errors.As(err, &cErr) {
		body := gin.H{
			"error":   "booking conflict",
			"kind":    string(cErr.Kind),
			"message": cErr.Error(),
		}
		if cErr.Kind == scheduler.BedOccupied {
			body["bed_number"] = cErr.BedNumber
			body["conflicting_booking_id"] = cErr.ConflictingBookingID
		}
		c.JSON(http.StatusConflict, body)
		return
	}

	if errors.Is(err, scheduler.ErrRoomNotFound) || errors.Is(err, scheduler.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not found",
			"message": err.Error(),
		})
		return
	}

	logger.Error(op+": storage failure", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "internal error",
		"message": "the booking store is unavailable; please retry",
	})
}
