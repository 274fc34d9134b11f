package bookingRepo

import (
	"context"
	"time"

	"wardsched/models"
)

// DecideFunc inspects a fresh snapshot of a room's bookings and returns the
// finalized booking to persist, or an error to abort the write. Placement
// decisions are re-run through it inside the same atomic unit as the write,
// so two concurrent requests for one room can never both pass validation
// against a stale snapshot.
type DecideFunc func(existing []models.Booking) (models.Booking, error)

// BookingRepository abstracts booking persistence and concurrency control.
type BookingRepository interface {
	// ListBookings returns the room's bookings whose inclusive date range
	// intersects [windowStart, windowEnd].
	ListBookings(roomID string, windowStart, windowEnd time.Time) ([]models.Booking, error)
	GetBookingByID(bookingID string) (*models.Booking, error)
	// PlaceBooking runs decide against a transactional snapshot of the room's
	// bookings and inserts the booking it returns.
	PlaceBooking(ctx context.Context, roomID string, decide DecideFunc) (*models.Booking, error)
	// ReplaceBooking runs decide against a transactional snapshot that
	// excludes the booking being edited, then replaces that booking with the
	// decision's result.
	ReplaceBooking(ctx context.Context, roomID, bookingID string, decide DecideFunc) (*models.Booking, error)
	DeleteBooking(bookingID string) error
}
