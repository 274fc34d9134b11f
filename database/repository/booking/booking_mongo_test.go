package bookingRepo

import (
	"testing"
	"time"

	"wardsched/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// Round-tripping a booking through the stored document must keep it on the
// same calendar days no matter what zone the in-memory times carried. The
// driver's datetime codec decodes to UTC, which would slide a local midnight
// east of UTC back to the previous day; day strings are immune to that.
func TestBookingDoc_BsonRoundTripKeepsCalendarDays(t *testing.T) {
	east := time.FixedZone("UTC+5", 5*3600)
	in := models.Booking{
		ID:            "b-1",
		RoomID:        "room-1",
		BedNumber:     1,
		PatientID:     "patient-9",
		IsRealPatient: true,
		StartDate:     time.Date(2025, 12, 2, 0, 0, 0, 0, east),
		EndDate:       time.Date(2025, 12, 7, 0, 0, 0, 0, east),
		Note:          "post-op",
		CreatedAt:     time.Date(2025, 12, 1, 10, 30, 0, 0, east),
	}

	raw, err := bson.Marshal(newBookingDoc(in))
	require.NoError(t, err)

	var doc bookingDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))

	out, err := doc.booking()
	require.NoError(t, err)

	assert.Equal(t, "2025-12-02", out.StartDate.Format(dayKeyFormat))
	assert.Equal(t, "2025-12-07", out.EndDate.Format(dayKeyFormat))

	// Rehydrated dates are local midnights, so downstream day math sees the
	// same calendar day the caller booked.
	assert.Equal(t, 0, out.StartDate.Hour())
	assert.Equal(t, 0, out.EndDate.Hour())
	assert.Equal(t, time.Local.String(), out.StartDate.Location().String())

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.BedNumber, out.BedNumber)
	assert.Equal(t, in.Note, out.Note)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
}

func TestBookingDoc_MalformedStoredDateSurfacesError(t *testing.T) {
	doc := bookingDoc{ID: "b-1", StartDate: "12/02/2025", EndDate: "2025-12-07"}
	_, err := doc.booking()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")
}

// Day strings sort lexicographically in date order, which the window filter
// in ListBookings relies on for its $lte/$gte comparisons.
func TestBookingDoc_DayKeysOrderLexicographically(t *testing.T) {
	keys := []string{"2025-01-09", "2025-01-10", "2025-12-31", "2026-01-01"}
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}
