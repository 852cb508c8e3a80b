// Package profile defines the single user profile that anchors all pregnancy
// calculations.
package profile

import (
	"time"

	"bump/internal/pregnancy"
)

// Permission mirrors the desktop notification permission state.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

// Profile is the process-wide user record. The due date is the sole source of
// truth for pregnancy progress. PregnancyStartDate is derived when the due
// date is set and stored redundantly for display; it is never recomputed on
// read.
type Profile struct {
	DueDate                  time.Time  `json:"due_date"`
	PregnancyStartDate       time.Time  `json:"pregnancy_start_date"`
	UserName                 string     `json:"user_name,omitempty"`
	NotificationPermission   Permission `json:"notification_permission"`
	OnboardingCompleted      bool       `json:"onboarding_completed"`
	PreferInAppNotifications bool       `json:"prefer_in_app_notifications"`
}

// New creates an onboarded profile for the given due date.
func New(dueDate time.Time, userName string) *Profile {
	return &Profile{
		DueDate:                dueDate,
		UserName:               userName,
		PregnancyStartDate:     pregnancy.StartDate(dueDate),
		OnboardingCompleted:    true,
		NotificationPermission: PermissionDefault,
	}
}

// SetDueDate updates the due date and re-derives the stored start date. This
// is the only place outside New where the start date changes.
func (p *Profile) SetDueDate(dueDate time.Time) {
	p.DueDate = dueDate
	p.PregnancyStartDate = pregnancy.StartDate(dueDate)
}

// Info derives the current pregnancy progress view.
func (p *Profile) Info(now time.Time) pregnancy.Info {
	return pregnancy.GetInfo(p.DueDate, now)
}
