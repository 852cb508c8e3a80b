package store

import (
	"time"

	"bump/internal/checkup"
	"bump/internal/profile"
	"bump/internal/session"
)

// DB is the database storage interface.
type DB interface {
	// SaveSession appends a finalized counting session to history. Saved
	// sessions are immutable records.
	SaveSession(sess *session.Session) error
	// RecentSessions returns saved sessions newest first, up to limit.
	// A limit of zero or less returns everything.
	RecentSessions(limit int) ([]session.Session, error)
	// SessionsInRange returns sessions whose start time falls within the
	// bounds, oldest first.
	SessionsInRange(startTime, endTime time.Time) ([]session.Session, error)
	// SaveCheckup creates or overwrites a checkup record.
	SaveCheckup(c *checkup.Checkup) error
	// GetCheckup retrieves a checkup by its identifier.
	GetCheckup(id string) (*checkup.Checkup, error)
	// DeleteCheckup removes a checkup by its identifier.
	DeleteCheckup(id string) error
	// Checkups returns all checkups sorted by appointment date.
	Checkups() ([]checkup.Checkup, error)
	// GetProfile returns the stored user profile, or nil when absent.
	GetProfile() (*profile.Profile, error)
	// SaveProfile stores the user profile.
	SaveProfile(p *profile.Profile) error
	// Reset clears all sessions, checkups, and the profile.
	Reset() error
	// Close ends the database connection.
	Close() error
}
