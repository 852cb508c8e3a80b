package profile

import (
	"testing"
	"time"

	"bump/internal/pregnancy"
)

func TestNewDerivesStartDate(t *testing.T) {
	dueDate := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	p := New(dueDate, "Anna")

	want := dueDate.AddDate(0, 0, -pregnancy.GestationDays)
	if !p.PregnancyStartDate.Equal(want) {
		t.Errorf("start date = %v, want %v", p.PregnancyStartDate, want)
	}

	if !p.OnboardingCompleted {
		t.Error("a new profile should have onboarding completed")
	}

	if p.NotificationPermission != PermissionDefault {
		t.Errorf(
			"permission = %s, want %s",
			p.NotificationPermission,
			PermissionDefault,
		)
	}
}

func TestSetDueDateRederivesStartDate(t *testing.T) {
	p := New(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), "")

	moved := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	p.SetDueDate(moved)

	want := moved.AddDate(0, 0, -pregnancy.GestationDays)
	if !p.PregnancyStartDate.Equal(want) {
		t.Errorf("start date = %v, want %v", p.PregnancyStartDate, want)
	}
}
