package scheduler

import (
	"time"

	"wardsched/models"
)

// StatusForBed reports one bed's status on a given day. NextFreeDate is the
// day after the covering booking ends; it only says when that booking
// vacates, a later booking may already be queued behind it.
func StatusForBed(bed int, bookingsForBed []models.Booking, onDate time.Time) models.BedStatus {
	day := Day(onDate)
	for _, b := range bookingsForBed {
		if Overlaps(b.StartDate, b.EndDate, day, day) {
			return models.BedStatus{
				Bed:          bed,
				Status:       models.BedOccupied,
				OccupiedBy:   b.ID,
				NextFreeDate: DayKey(NextDay(b.EndDate)),
			}
		}
	}
	return models.BedStatus{Bed: bed, Status: models.BedAvailable}
}

// Summary derives the point-in-time occupancy picture for a room: per-bed
// status plus occupied/available counts against capacity.
func Summary(room models.Room, bookings []models.Booking, onDate time.Time) models.RoomSummary {
	asg := AssignBeds(room, bookings)
	summary := models.RoomSummary{
		RoomID:   room.ID,
		Date:     DayKey(onDate),
		Capacity: room.BedCapacity,
		Beds:     make([]models.BedStatus, 0, room.BedCapacity),
	}
	for bed := 1; bed <= room.BedCapacity; bed++ {
		st := StatusForBed(bed, asg.Tracks[bed], onDate)
		summary.Beds = append(summary.Beds, st)
		if st.Status == models.BedOccupied {
			summary.Occupied++
		}
	}
	summary.Available = summary.Capacity - summary.Occupied
	return summary
}

// WindowOccupancy builds the full bed-by-day matrix for a query window from
// an assignment's tracks. This is the single place span boundaries are
// derived: a cell is the span's first day when the booking starts on it and
// its last day when the booking ends on it, so renderers can draw continuous
// bars without re-deriving scheduling semantics.
func WindowOccupancy(room models.Room, asg Assignment, windowStart, windowEnd time.Time) models.OccupancyGrid {
	grid := models.OccupancyGrid{
		RoomID: room.ID,
		Beds:   make([]models.BedRow, 0, room.BedCapacity),
	}
	for day := range Days(windowStart, windowEnd) {
		grid.Days = append(grid.Days, day)
	}

	for bed := 1; bed <= room.BedCapacity; bed++ {
		row := models.BedRow{Bed: bed, Cells: make(map[string]models.GridCell)}
		for _, b := range asg.Tracks[bed] {
			firstKey, lastKey := DayKey(b.StartDate), DayKey(b.EndDate)
			// Clamp the span to the window; days outside it get no cells.
			from := laterDay(b.StartDate, windowStart)
			to := earlierDay(b.EndDate, windowEnd)
			for day := range Days(from, to) {
				row.Cells[day] = models.GridCell{
					BookingID:     b.ID,
					PatientID:     b.PatientID,
					IsRealPatient: b.IsRealPatient,
					IsFirstDay:    day == firstKey,
					IsLastDay:     day == lastKey,
				}
			}
		}
		grid.Beds = append(grid.Beds, row)
	}
	return grid
}

func laterDay(a, b time.Time) time.Time {
	if Day(a).After(Day(b)) {
		return Day(a)
	}
	return Day(b)
}

func earlierDay(a, b time.Time) time.Time {
	if Day(a).Before(Day(b)) {
		return Day(a)
	}
	return Day(b)
}
