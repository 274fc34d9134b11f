package scheduler

import (
	"time"

	"wardsched/models"
)

// Placement is an accepted booking placement. Dates are returned normalized
// to local midnights so callers persist exactly what was validated.
type Placement struct {
	BedNumber int
	StartDate time.Time
	EndDate   time.Time
}

// Validate decides whether the candidate booking can be placed in the room
// given its existing bookings. It is a pure decision function: no side
// effects, no persistence. Callers must re-run it against a fresh snapshot
// inside the same atomic unit as the write (per-room serializable placement
// is the store's responsibility).
//
// A candidate with a concrete bed number is checked against that bed only; a
// manual bed choice can be rejected but is never silently reassigned. A
// candidate without a bed delegates to PlaceOne.
func Validate(room models.Room, existing []models.Booking, candidate models.Booking) (Placement, error) {
	if room.BedCapacity < 1 {
		return Placement{}, newValidationError("bed_capacity", "room %s has no beds", room.ID)
	}
	if candidate.RoomID != room.ID {
		return Placement{}, newValidationError("room_id", "candidate targets room %s, not %s", candidate.RoomID, room.ID)
	}
	if candidate.StartDate.IsZero() || candidate.EndDate.IsZero() {
		return Placement{}, newValidationError("start_date", "start and end dates are required")
	}

	start, end := Day(candidate.StartDate), Day(candidate.EndDate)
	if start.After(end) {
		return Placement{}, newValidationError("end_date", "end date %s precedes start date %s", DayKey(end), DayKey(start))
	}
	if candidate.BedNumber < 0 || candidate.BedNumber > room.BedCapacity {
		return Placement{}, newValidationError("bed_number", "bed %d is out of range 1..%d", candidate.BedNumber, room.BedCapacity)
	}

	if candidate.BedNumber != 0 {
		for _, b := range existing {
			if b.BedNumber != candidate.BedNumber {
				continue
			}
			if Overlaps(b.StartDate, b.EndDate, start, end) {
				return Placement{}, &ConflictError{
					Kind:                 BedOccupied,
					BedNumber:            candidate.BedNumber,
					ConflictingBookingID: b.ID,
				}
			}
		}
		return Placement{BedNumber: candidate.BedNumber, StartDate: start, EndDate: end}, nil
	}

	normalized := candidate
	normalized.StartDate, normalized.EndDate = start, end
	bed, err := PlaceOne(room, existing, normalized)
	if err != nil {
		return Placement{}, err
	}
	return Placement{BedNumber: bed, StartDate: start, EndDate: end}, nil
}
