package scheduler

import (
	"sort"

	"wardsched/models"
)

// Assignment is the result of partitioning a room's bookings into bed tracks.
type Assignment struct {
	// Tracks maps bed number (1..BedCapacity) to that bed's bookings, ordered
	// by start date. Beds with no bookings have no entry.
	Tracks map[int][]models.Booking
	// BedFor maps booking ID to its resolved bed number.
	BedFor map[string]int
	// Unplaced holds bookings no bed could accommodate. Callers must surface
	// these, never drop them.
	Unplaced []models.Booking
}

// AssignBeds deterministically partitions a room's bookings into bed tracks
// using greedy interval partitioning: bookings are visited in (start date,
// creation time) order and each unassigned one lands on the lowest-numbered
// bed that is free for its whole range. Bookings that already carry a bed
// number are pinned to it and never moved; a hand-picked bed survives every
// recomputation. The (start, createdAt) ordering keeps bed numbers stable
// across recomputation, which matters because they are user-visible.
func AssignBeds(room models.Room, bookings []models.Booking) Assignment {
	out := Assignment{
		Tracks: make(map[int][]models.Booking, room.BedCapacity),
		BedFor: make(map[string]int, len(bookings)),
	}

	sorted := sortForAssignment(bookings)

	var unassigned []models.Booking
	for _, b := range sorted {
		switch {
		case b.BedNumber >= 1 && b.BedNumber <= room.BedCapacity:
			out.Tracks[b.BedNumber] = append(out.Tracks[b.BedNumber], b)
			out.BedFor[b.ID] = b.BedNumber
		case b.BedNumber == 0:
			unassigned = append(unassigned, b)
		default:
			// A bed number outside the room's range means the capacity was
			// edited down after placement. The bed number is user-visible, so
			// surface the booking rather than quietly moving the patient.
			out.Unplaced = append(out.Unplaced, b)
		}
	}

	for _, b := range unassigned {
		placed := false
		for bed := 1; bed <= room.BedCapacity; bed++ {
			if trackAccepts(out.Tracks[bed], b) {
				b.BedNumber = bed
				out.Tracks[bed] = append(out.Tracks[bed], b)
				out.BedFor[b.ID] = bed
				placed = true
				break
			}
		}
		if !placed {
			out.Unplaced = append(out.Unplaced, b)
		}
	}

	// Pinned bookings were appended before greedy ones, so restore start-date
	// order within each track for downstream rendering.
	for bed, track := range out.Tracks {
		sort.SliceStable(track, func(i, j int) bool {
			return Day(track[i].StartDate).Before(Day(track[j].StartDate))
		})
		out.Tracks[bed] = track
	}

	return out
}

// PlaceOne finds a bed for a single unassigned candidate against a room's
// existing bookings, without moving any of them. Beds are scanned from 1
// upward and the first one free for the candidate's whole range wins.
// Returns ConflictError{RoomFull} when every bed overlaps.
func PlaceOne(room models.Room, existing []models.Booking, candidate models.Booking) (int, error) {
	for bed := 1; bed <= room.BedCapacity; bed++ {
		free := true
		for _, b := range existing {
			if b.BedNumber != bed {
				continue
			}
			if Overlaps(b.StartDate, b.EndDate, candidate.StartDate, candidate.EndDate) {
				free = false
				break
			}
		}
		if free {
			return bed, nil
		}
	}
	return 0, &ConflictError{Kind: RoomFull}
}

func sortForAssignment(bookings []models.Booking) []models.Booking {
	sorted := make([]models.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := Day(sorted[i].StartDate), Day(sorted[j].StartDate)
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

func trackAccepts(track []models.Booking, b models.Booking) bool {
	for _, other := range track {
		if Overlaps(other.StartDate, other.EndDate, b.StartDate, b.EndDate) {
			return false
		}
	}
	return true
}
