package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestDayKey_IgnoresTimeOfDay(t *testing.T) {
	lateEvening := time.Date(2025, time.December, 2, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "2025-12-02", DayKey(lateEvening))
	assert.Equal(t, "2025-12-02", DayKey(date(2025, time.December, 2)))
}

func TestParseDayKey_RoundTrips(t *testing.T) {
	d, err := ParseDayKey("2025-12-07")
	assert.NoError(t, err)
	assert.Equal(t, date(2025, time.December, 7), d)

	_, err = ParseDayKey("07/12/2025")
	assert.Error(t, err)
}

func TestOverlaps_InclusiveEndpoints(t *testing.T) {
	// A booking ending on day X conflicts with one starting on day X.
	assert.True(t, Overlaps(
		date(2025, time.December, 1), date(2025, time.December, 5),
		date(2025, time.December, 5), date(2025, time.December, 9),
	))

	// Abutting ranges (end + 1 day == next start) never conflict.
	assert.False(t, Overlaps(
		date(2025, time.December, 1), date(2025, time.December, 5),
		date(2025, time.December, 6), date(2025, time.December, 9),
	))
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := [][4]time.Time{
		{date(2025, time.December, 1), date(2025, time.December, 5), date(2025, time.December, 3), date(2025, time.December, 8)},
		{date(2025, time.December, 1), date(2025, time.December, 5), date(2025, time.December, 6), date(2025, time.December, 9)},
		{date(2025, time.December, 4), date(2025, time.December, 4), date(2025, time.December, 4), date(2025, time.December, 4)},
		{date(2025, time.December, 2), date(2025, time.December, 7), date(2025, time.December, 8), date(2025, time.December, 8)},
	}
	for _, c := range cases {
		assert.Equal(t,
			Overlaps(c[0], c[1], c[2], c[3]),
			Overlaps(c[2], c[3], c[0], c[1]),
			"overlaps must be symmetric for %v", c)
	}
}

func TestOverlaps_SingleDayRange(t *testing.T) {
	day := date(2025, time.December, 4)
	assert.True(t, Overlaps(day, day, date(2025, time.December, 1), date(2025, time.December, 31)))
	assert.False(t, Overlaps(day, day, date(2025, time.December, 5), date(2025, time.December, 9)))
}

func TestDays_EnumeratesWindow(t *testing.T) {
	var got []string
	for d := range Days(date(2025, time.December, 1), date(2025, time.December, 7)) {
		got = append(got, d)
	}
	assert.Equal(t, []string{
		"2025-12-01", "2025-12-02", "2025-12-03", "2025-12-04",
		"2025-12-05", "2025-12-06", "2025-12-07",
	}, got)
}

func TestDays_Restartable(t *testing.T) {
	seq := Days(date(2025, time.December, 30), date(2026, time.January, 2))

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 4, count())
	// Ranging a second time over the same sequence starts over.
	assert.Equal(t, 4, count())
}

func TestDays_EmptyWhenEndPrecedesStart(t *testing.T) {
	for range Days(date(2025, time.December, 7), date(2025, time.December, 1)) {
		t.Fatal("expected empty sequence")
	}
}

func TestDays_StopsWhenConsumerBreaks(t *testing.T) {
	n := 0
	for range Days(date(2025, time.January, 1), date(2025, time.December, 31)) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestNextDay_CrossesMonthBoundary(t *testing.T) {
	assert.Equal(t, date(2026, time.January, 1), NextDay(date(2025, time.December, 31)))
}
