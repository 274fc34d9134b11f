package scheduler

import "fmt"

// ConflictKind discriminates the two expected business rejections.
type ConflictKind string

const (
	// BedOccupied means a specific bed conflicts with a specific existing booking.
	BedOccupied ConflictKind = "bed_occupied"
	// RoomFull means no bed in the room can accommodate the requested range.
	RoomFull ConflictKind = "room_full"
)

// ConflictError is an expected business outcome, not a bug: the requested
// placement collides with existing bookings. It is surfaced to the end user
// and never retried automatically.
type ConflictError struct {
	Kind                 ConflictKind
	BedNumber            int    // Bed that was checked, when Kind is BedOccupied
	ConflictingBookingID string // Set when Kind is BedOccupied
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case BedOccupied:
		return fmt.Sprintf("bed %d is occupied by booking %s for the requested range", e.BedNumber, e.ConflictingBookingID)
	case RoomFull:
		return "no bed in the room can accommodate the requested range"
	default:
		return string(e.Kind)
	}
}

// ValidationError is a caller mistake: malformed dates, a bed number out of
// range, or a mismatched room reference. Surfaced immediately, never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
