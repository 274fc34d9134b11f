package scheduler

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"wardsched/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom(capacity int) models.Room {
	return models.Room{ID: "room-1", Name: "Room 1", BedCapacity: capacity}
}

func testBooking(id string, start, end time.Time, createdMinute int) models.Booking {
	return models.Booking{
		ID:            id,
		RoomID:        "room-1",
		PatientID:     "patient-" + id,
		IsRealPatient: true,
		StartDate:     start,
		EndDate:       end,
		CreatedAt:     time.Date(2025, time.November, 1, 9, createdMinute, 0, 0, time.Local),
	}
}

func TestAssignBeds_GreedyFillsLowBedsFirst(t *testing.T) {
	room := testRoom(2)
	a := testBooking("A", date(2025, time.December, 2), date(2025, time.December, 7), 0)
	b := testBooking("B", date(2025, time.December, 5), date(2025, time.December, 10), 1)

	asg := AssignBeds(room, []models.Booking{a, b})

	assert.Equal(t, 1, asg.BedFor["A"])
	// Bed 1 is occupied through Dec 7, which overlaps Dec 5-10.
	assert.Equal(t, 2, asg.BedFor["B"])
	assert.Empty(t, asg.Unplaced)
}

func TestAssignBeds_AbuttingBookingReusesBed(t *testing.T) {
	room := testRoom(2)
	a := testBooking("A", date(2025, time.December, 2), date(2025, time.December, 7), 0)
	b := testBooking("B", date(2025, time.December, 5), date(2025, time.December, 10), 1)
	c := testBooking("C", date(2025, time.December, 8), date(2025, time.December, 9), 2)

	asg := AssignBeds(room, []models.Booking{a, b, c})

	// Bed 1's last booking ends Dec 7; Dec 8 starts the day after, no conflict.
	assert.Equal(t, 1, asg.BedFor["C"])
}

func TestAssignBeds_CreatedAtBreaksTies(t *testing.T) {
	room := testRoom(2)
	// Same start date; the earlier-created booking must land on bed 1 no
	// matter the input order.
	late := testBooking("late", date(2025, time.December, 3), date(2025, time.December, 4), 30)
	early := testBooking("early", date(2025, time.December, 3), date(2025, time.December, 6), 5)

	asg := AssignBeds(room, []models.Booking{late, early})

	assert.Equal(t, 1, asg.BedFor["early"])
	assert.Equal(t, 2, asg.BedFor["late"])
}

func TestAssignBeds_PinnedBedIsNeverMoved(t *testing.T) {
	room := testRoom(3)
	pinned := testBooking("pinned", date(2025, time.December, 1), date(2025, time.December, 3), 0)
	pinned.BedNumber = 3
	floating := testBooking("floating", date(2025, time.December, 1), date(2025, time.December, 3), 1)

	asg := AssignBeds(room, []models.Booking{pinned, floating})

	assert.Equal(t, 3, asg.BedFor["pinned"])
	assert.Equal(t, 1, asg.BedFor["floating"])
}

func TestAssignBeds_UnplaceableBookingIsReported(t *testing.T) {
	room := testRoom(1)
	a := testBooking("A", date(2025, time.December, 1), date(2025, time.December, 31), 0)
	b := testBooking("B", date(2025, time.December, 10), date(2025, time.December, 15), 1)

	asg := AssignBeds(room, []models.Booking{a, b})

	require.Len(t, asg.Unplaced, 1)
	assert.Equal(t, "B", asg.Unplaced[0].ID)
	assert.Equal(t, 1, asg.BedFor["A"])
}

// Shrinking a room's capacity can strand bookings on beds that no longer
// exist. They must show up as unplaced with their original bed number intact,
// never be quietly moved to another bed.
func TestAssignBeds_PinnedBedAboveCapacityIsReportedNotMoved(t *testing.T) {
	room := testRoom(1)
	stranded := testBooking("A", date(2025, time.December, 2), date(2025, time.December, 7), 0)
	stranded.BedNumber = 2
	b := testBooking("B", date(2025, time.December, 3), date(2025, time.December, 4), 1)

	asg := AssignBeds(room, []models.Booking{stranded, b})

	require.Len(t, asg.Unplaced, 1)
	assert.Equal(t, "A", asg.Unplaced[0].ID)
	assert.Equal(t, 2, asg.Unplaced[0].BedNumber)
	_, resolved := asg.BedFor["A"]
	assert.False(t, resolved)
	// Bed 1 stays free for bookings that actually fit the room.
	assert.Equal(t, 1, asg.BedFor["B"])
}

func TestAssignBeds_SingleBedDegeneratesToIntervalScheduling(t *testing.T) {
	room := testRoom(1)
	a := testBooking("A", date(2025, time.December, 1), date(2025, time.December, 5), 0)
	b := testBooking("B", date(2025, time.December, 6), date(2025, time.December, 9), 1)
	c := testBooking("C", date(2025, time.December, 10), date(2025, time.December, 10), 2)

	asg := AssignBeds(room, []models.Booking{c, a, b})

	assert.Empty(t, asg.Unplaced)
	require.Len(t, asg.Tracks[1], 3)
	assert.Equal(t, "A", asg.Tracks[1][0].ID)
	assert.Equal(t, "B", asg.Tracks[1][1].ID)
	assert.Equal(t, "C", asg.Tracks[1][2].ID)
}

func TestAssignBeds_NoTrackEverOverlaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 100; run++ {
		capacity := 1 + rng.Intn(4)
		room := testRoom(capacity)

		n := rng.Intn(20)
		bookings := make([]models.Booking, 0, n)
		for i := 0; i < n; i++ {
			startDay := 1 + rng.Intn(25)
			length := rng.Intn(6)
			bookings = append(bookings, testBooking(
				fmt.Sprintf("b%d", i),
				date(2025, time.December, startDay),
				date(2025, time.December, startDay+length),
				i,
			))
		}

		asg := AssignBeds(room, bookings)

		placed := 0
		for bed, track := range asg.Tracks {
			require.GreaterOrEqual(t, bed, 1)
			require.LessOrEqual(t, bed, capacity)
			placed += len(track)
			for i := 0; i < len(track); i++ {
				for j := i + 1; j < len(track); j++ {
					require.False(t,
						Overlaps(track[i].StartDate, track[i].EndDate, track[j].StartDate, track[j].EndDate),
						"run %d: bookings %s and %s overlap on bed %d", run, track[i].ID, track[j].ID, bed)
				}
			}
		}
		require.Equal(t, n, placed+len(asg.Unplaced))
	}
}

func TestAssignBeds_StableAcrossRecomputation(t *testing.T) {
	room := testRoom(3)
	bookings := []models.Booking{
		testBooking("A", date(2025, time.December, 1), date(2025, time.December, 4), 0),
		testBooking("B", date(2025, time.December, 2), date(2025, time.December, 6), 1),
		testBooking("C", date(2025, time.December, 5), date(2025, time.December, 8), 2),
		testBooking("D", date(2025, time.December, 7), date(2025, time.December, 9), 3),
	}

	first := AssignBeds(room, bookings)
	second := AssignBeds(room, []models.Booking{bookings[3], bookings[1], bookings[0], bookings[2]})

	assert.Equal(t, first.BedFor, second.BedFor)
}

func TestPlaceOne_ScansBedsFromOneUpward(t *testing.T) {
	room := testRoom(2)
	existing := []models.Booking{}
	a := testBooking("A", date(2025, time.December, 2), date(2025, time.December, 7), 0)

	bed, err := PlaceOne(room, existing, a)
	require.NoError(t, err)
	assert.Equal(t, 1, bed)

	a.BedNumber = bed
	existing = append(existing, a)

	b := testBooking("B", date(2025, time.December, 5), date(2025, time.December, 10), 1)
	bed, err = PlaceOne(room, existing, b)
	require.NoError(t, err)
	assert.Equal(t, 2, bed)
}

func TestPlaceOne_RoomFullWhenEveryBedOverlaps(t *testing.T) {
	room := testRoom(1)
	a := testBooking("A", date(2025, time.December, 1), date(2025, time.December, 31), 0)
	a.BedNumber = 1

	_, err := PlaceOne(room, []models.Booking{a}, testBooking("B", date(2025, time.December, 10), date(2025, time.December, 15), 1))

	var cErr *ConflictError
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, RoomFull, cErr.Kind)
}
