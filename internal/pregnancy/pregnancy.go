// Package pregnancy derives pregnancy progress from a due date. All functions
// are pure: the current time is always an explicit argument and no clock is
// read internally.
package pregnancy

import (
	"time"

	"bump/internal/timeutil"
)

// GestationDays is the assumed length of a pregnancy (40 weeks).
const GestationDays = 280

const daysInAWeek = 7

// Trimester is a coarse pregnancy phase derived from elapsed weeks.
type Trimester string

const (
	TrimesterEarly Trimester = "early"
	TrimesterMid   Trimester = "mid"
	TrimesterLate  Trimester = "late"
)

// Trimester boundaries in elapsed weeks. The lower edge is inclusive: week 14
// is mid, week 28 is late.
const (
	midTrimesterWeek  = 14
	lateTrimesterWeek = 28
)

// Info is the derived progress view for a due date. It is recomputed on every
// read and never persisted, so it always reflects the current date.
type Info struct {
	BabySize     BabySize  `json:"baby_size"`
	Trimester    Trimester `json:"trimester"`
	Weeks        int       `json:"weeks"`
	Days         int       `json:"days"`
	DaysUntilDue int       `json:"days_until_due"`
}

// StartDate returns the presumed first day of the pregnancy.
func StartDate(dueDate time.Time) time.Time {
	return dueDate.AddDate(0, 0, -GestationDays)
}

// WeeksPregnant reports elapsed gestation as whole weeks plus leftover days.
// The division floors, so weeks*7+days always equals the calendar-day count
// since the start date, even when now precedes it and the count is negative.
func WeeksPregnant(dueDate, now time.Time) (weeks, days int) {
	totalDays := timeutil.DaysBetween(StartDate(dueDate), now)

	weeks = totalDays / daysInAWeek
	days = totalDays % daysInAWeek

	if days < 0 {
		days += daysInAWeek
		weeks--
	}

	return weeks, days
}

// DaysUntilDue returns the calendar days from now until the due date. It is
// negative once the due date has passed.
func DaysUntilDue(dueDate, now time.Time) int {
	return timeutil.DaysBetween(now, dueDate)
}

// TrimesterOf maps elapsed weeks to a trimester.
func TrimesterOf(weeks int) Trimester {
	switch {
	case weeks < midTrimesterWeek:
		return TrimesterEarly
	case weeks < lateTrimesterWeek:
		return TrimesterMid
	default:
		return TrimesterLate
	}
}

// GetInfo composes the full progress view for a due date.
func GetInfo(dueDate, now time.Time) Info {
	weeks, days := WeeksPregnant(dueDate, now)

	return Info{
		Weeks:        weeks,
		Days:         days,
		DaysUntilDue: DaysUntilDue(dueDate, now),
		Trimester:    TrimesterOf(weeks),
		BabySize:     SizeForWeek(weeks),
	}
}
