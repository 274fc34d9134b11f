package models

// Bed status values reported by the availability calculator.
const (
	BedAvailable = "available"
	BedOccupied  = "occupied"
)

// BedStatus describes one bed on one day.
type BedStatus struct {
	Bed          int    `json:"bed"`
	Status       string `json:"status"`
	OccupiedBy   string `json:"occupied_by,omitempty"`    // Booking ID covering the day, when occupied
	NextFreeDate string `json:"next_free_date,omitempty"` // Day after the covering booking ends; a later booking may already be queued
}

// RoomSummary is the point-in-time occupancy picture for one room.
type RoomSummary struct {
	RoomID    string      `json:"room_id"`
	Date      string      `json:"date"` // Day key, "YYYY-MM-DD"
	Capacity  int         `json:"capacity"`
	Occupied  int         `json:"occupied"`
	Available int         `json:"available"`
	Beds      []BedStatus `json:"beds"`
}

// GridCell is one occupied bed-day in an occupancy grid. First/last day flags
// let a renderer draw continuous bars without re-deriving span boundaries.
type GridCell struct {
	BookingID     string `json:"booking_id"`
	PatientID     string `json:"patient_id"`
	IsRealPatient bool   `json:"is_real_patient"`
	IsFirstDay    bool   `json:"is_first_day"`
	IsLastDay     bool   `json:"is_last_day"`
}

// BedRow holds one bed's cells for a query window, keyed by day key.
// Days absent from the map are free.
type BedRow struct {
	Bed   int                 `json:"bed"`
	Cells map[string]GridCell `json:"cells"`
}

// OccupancyGrid is the full bed-by-day matrix for a room over a query window.
type OccupancyGrid struct {
	RoomID string   `json:"room_id"`
	Days   []string `json:"days"`
	Beds   []BedRow `json:"beds"`
}
