// Package checkup defines scheduled prenatal appointments and their reminder
// policy.
package checkup

import (
	"sort"
	"time"
)

// Type is one of the closed set of prenatal checkup kinds.
type Type string

const (
	TypeInitialVisit  Type = "initial visit"
	TypeNTScan        Type = "NT scan"
	TypeDownScreening Type = "Down syndrome screening"
	TypeAnomalyScan   Type = "anomaly scan"
	TypeGlucoseTest   Type = "glucose tolerance test"
	TypeRoutine       Type = "routine checkup"
	TypeOther         Type = "other"
)

// Types lists every valid checkup type.
var Types = []Type{
	TypeInitialVisit,
	TypeNTScan,
	TypeDownScreening,
	TypeAnomalyScan,
	TypeGlucoseTest,
	TypeRoutine,
	TypeOther,
}

// DefaultReminderOffsets are the minutes-before-checkup alert offsets applied
// whenever reminders are enabled: one day and three hours ahead. The offsets
// are policy, not per-checkup user input.
var DefaultReminderOffsets = []int{1440, 180}

// DefaultUpcomingWindow is the look-ahead used when listing imminent checkups.
const DefaultUpcomingWindow = 24 * time.Hour

// Checkup is a scheduled prenatal appointment.
type Checkup struct {
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
	ID              string    `json:"id"`
	Type            Type      `json:"type"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	ReminderOffsets []int     `json:"reminder_offsets"` // minutes before
	ReminderEnabled bool      `json:"reminder_enabled"`
	Completed       bool      `json:"completed"`
}

// ValidType reports whether t belongs to the closed type set.
func ValidType(t Type) bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}

	return false
}

// ReminderTimes resolves the checkup's reminder offsets into concrete alert
// times, earliest first. Disabled reminders yield nothing.
func (c *Checkup) ReminderTimes() []time.Time {
	if !c.ReminderEnabled {
		return nil
	}

	times := make([]time.Time, 0, len(c.ReminderOffsets))

	for _, mins := range c.ReminderOffsets {
		times = append(times, c.Date.Add(-time.Duration(mins)*time.Minute))
	}

	sort.Slice(times, func(i, j int) bool {
		return times[i].Before(times[j])
	})

	return times
}

// Upcoming filters checkups that are not completed and fall within the window
// after now, soonest first.
func Upcoming(checkups []Checkup, now time.Time, window time.Duration) []Checkup {
	deadline := now.Add(window)

	var upcoming []Checkup

	for _, c := range checkups {
		if c.Completed {
			continue
		}

		if c.Date.Before(now) || c.Date.After(deadline) {
			continue
		}

		upcoming = append(upcoming, c)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	return upcoming
}

// SortByDate orders checkups ascending by appointment date in place.
func SortByDate(checkups []Checkup) {
	sort.Slice(checkups, func(i, j int) bool {
		return checkups[i].Date.Before(checkups[j].Date)
	})
}
