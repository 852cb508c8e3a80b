// Package session defines fetal-movement counting sessions and the tracker
// that manages the one active session.
package session

import (
	"time"
)

// Session represents one contiguous movement-counting interval, from start to
// save or cancel. Saved sessions are immutable history records.
type Session struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Date      time.Time `json:"date"`
	ID        string    `json:"id"`
	Count     int       `json:"count"`
	Duration  int       `json:"duration"` // minutes
	Completed bool      `json:"completed"`
}

// Ended reports whether the session has been finalized.
func (s *Session) Ended() bool {
	return !s.EndTime.IsZero()
}

// Elapsed returns the time spent in the session so far.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
