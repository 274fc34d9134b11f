package models

// BookingRequestInput is the wire form of a booking creation request. Dates
// are day keys ("YYYY-MM-DD"); patient and room arrive as plain IDs and are
// resolved to concrete records at the handler boundary.
type BookingRequestInput struct {
	RoomID        string `json:"room_id" binding:"required"`
	PatientID     string `json:"patient_id" binding:"required"`
	BedNumber     int    `json:"bed_number"` // 0 lets the scheduler pick a bed
	IsRealPatient *bool  `json:"is_real_patient"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Note          string `json:"note"`
}

// BookingUpdateInput is an administrative edit: a date change and/or a note
// change. Nil fields are left untouched. Date changes re-run conflict
// validation before anything is persisted.
type BookingUpdateInput struct {
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// RoomInput creates a room.
type RoomInput struct {
	Name        string `json:"name" binding:"required"`
	Ward        string `json:"ward"`
	BedCapacity int    `json:"bed_capacity" binding:"required"`
}
