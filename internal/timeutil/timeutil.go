// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"math"
	"time"
)

const minutesInAnHour = 60

const HoursInADay = 24

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)

	mins = total / 60
	secs = total % 60

	return
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// DaysBetween returns the number of calendar days from start to end. Both
// values are normalized to the start of their day first, so time-of-day never
// affects the result. The result is negative when end precedes start.
// Rounding absorbs DST transitions that make a day 23 or 25 hours long.
func DaysBetween(start, end time.Time) int {
	s := RoundToStart(start)
	e := RoundToStart(end)

	return Round(e.Sub(s).Hours() / HoursInADay)
}

// WholeMinutes returns the elapsed time from start to end rounded down to
// whole minutes. This is timestamp arithmetic (second granularity), distinct
// from the calendar-day arithmetic in DaysBetween.
func WholeMinutes(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Minutes()))
}

// DaysIn returns the number of days in the month for the specified time.
func DaysIn(t time.Time) int {
	m := t.Month()
	year := t.Year()

	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the start of the first day and the end of the last day
// of the month containing t.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = RoundToEnd(start.AddDate(0, 0, DaysIn(t)-1))

	return
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.Format(time.RFC3339Nano))
}
