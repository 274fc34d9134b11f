package models

import "time"

// Booking represents a patient's claim on one bed for an inclusive date range.
// Dates carry no time-of-day semantics; both StartDate and EndDate are
// occupied days, so a booking ending on day X conflicts with one starting on
// day X.
type Booking struct {
	ID            string    `bson:"id" json:"id"`                           // Unique booking identifier (e.g., UUID)
	RoomID        string    `bson:"room_id" json:"room_id"`                 // Owning room
	BedNumber     int       `bson:"bed_number" json:"bed_number"`           // 1..BedCapacity once placed; 0 while unassigned
	PatientID     string    `bson:"patient_id" json:"patient_id"`           // External patient reference
	IsRealPatient bool      `bson:"is_real_patient" json:"is_real_patient"` // false = administrative hold that still blocks the bed
	StartDate     time.Time `bson:"start_date" json:"start_date"`           // First occupied day
	EndDate       time.Time `bson:"end_date" json:"end_date"`               // Last occupied day (inclusive)
	Note          string    `bson:"note,omitempty" json:"note,omitempty"`   // Free text, opaque to the scheduler
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`           // Tie-breaker for assignment ordering
}
