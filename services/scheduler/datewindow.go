package scheduler

import (
	"iter"
	"time"
)

// dayKeyFormat is the canonical day representation used everywhere in the
// scheduler. Comparisons and map keys all go through it so "same day" has a
// single definition.
const dayKeyFormat = "2006-01-02"

// Day truncates t to midnight of its local calendar day. All date arithmetic
// in this package operates on Day-normalized values so that time-of-day and
// DST offsets can never shift a booking across a day boundary.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey renders t's calendar day as "YYYY-MM-DD". The key is computed from
// the calendar fields of t in its own location, never from an epoch/UTC
// conversion.
func DayKey(t time.Time) string {
	return Day(t).Format(dayKeyFormat)
}

// ParseDayKey parses a "YYYY-MM-DD" day key into a local midnight.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dayKeyFormat, key, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Overlaps reports whether two inclusive date ranges share at least one
// calendar day. A range ending on day X overlaps a range starting on day X;
// a range ending on day X does not overlap one starting on day X+1.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aS, aE := Day(aStart), Day(aEnd)
	bS, bE := Day(bStart), Day(bEnd)
	return !aS.After(bE) && !bS.After(aE)
}

// NextDay returns midnight of the calendar day after t.
func NextDay(t time.Time) time.Time {
	return Day(t).AddDate(0, 0, 1)
}

// Days yields the day keys of the inclusive window [start, end], in order.
// The sequence is lazy and restartable; it is empty when end precedes start.
func Days(start, end time.Time) iter.Seq[string] {
	first, last := Day(start), Day(end)
	return func(yield func(string) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d.Format(dayKeyFormat)) {
				return
			}
		}
	}
}
