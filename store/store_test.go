package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"bump/internal/checkup"
	"bump/internal/profile"
	"bump/internal/session"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(filepath.Join(t.TempDir(), "bump_test.db"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func newSavedSession(start time.Time, count int) *session.Session {
	return &session.Session{
		ID:        uuid.NewString(),
		Date:      start.Truncate(24 * time.Hour),
		StartTime: start,
		EndTime:   start.Add(10 * time.Minute),
		Count:     count,
		Duration:  10,
		Completed: count >= 10,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	client := newTestClient(t)

	base := time.Date(2025, time.April, 1, 20, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		sess := newSavedSession(base.AddDate(0, 0, i), i+6)

		if err := client.SaveSession(sess); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := client.RecentSessions(3)
	if err != nil {
		t.Fatal(err)
	}

	if len(recent) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(recent))
	}

	if !recent[0].StartTime.After(recent[1].StartTime) {
		t.Error("recent sessions are not newest first")
	}

	if recent[0].Count != 10 {
		t.Errorf("newest session count = %d, want 10", recent[0].Count)
	}
}

func TestSessionsInRange(t *testing.T) {
	client := newTestClient(t)

	base := time.Date(2025, time.April, 1, 20, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		if err := client.SaveSession(newSavedSession(base.AddDate(0, 0, i), 10)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := client.SessionsInRange(
		base.AddDate(0, 0, 2),
		base.AddDate(0, 0, 5),
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 4 {
		t.Fatalf("expected 4 sessions in range, got %d", len(got))
	}

	for i := 1; i < len(got); i++ {
		if got[i].StartTime.Before(got[i-1].StartTime) {
			t.Fatal("range results are not oldest first")
		}
	}
}

func TestCheckupCRUD(t *testing.T) {
	client := newTestClient(t)

	ck := &checkup.Checkup{
		ID:              uuid.NewString(),
		Date:            time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC),
		Type:            checkup.TypeAnomalyScan,
		Location:        "City Hospital",
		ReminderEnabled: true,
		ReminderOffsets: checkup.DefaultReminderOffsets,
		CreatedAt:       time.Now(),
	}

	if err := client.SaveCheckup(ck); err != nil {
		t.Fatal(err)
	}

	got, err := client.GetCheckup(ck.ID)
	if err != nil {
		t.Fatal(err)
	}

	if got == nil || got.Type != checkup.TypeAnomalyScan {
		t.Fatalf("unexpected checkup: %+v", got)
	}

	got.Completed = true
	if err := client.SaveCheckup(got); err != nil {
		t.Fatal(err)
	}

	all, err := client.Checkups()
	if err != nil {
		t.Fatal(err)
	}

	if len(all) != 1 || !all[0].Completed {
		t.Fatalf("expected one completed checkup, got %+v", all)
	}

	if err := client.DeleteCheckup(ck.ID); err != nil {
		t.Fatal(err)
	}

	missing, err := client.GetCheckup(ck.ID)
	if err != nil {
		t.Fatal(err)
	}

	if missing != nil {
		t.Fatal("checkup still present after delete")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	client := newTestClient(t)

	none, err := client.GetProfile()
	if err != nil {
		t.Fatal(err)
	}

	if none != nil {
		t.Fatal("expected no profile before onboarding")
	}

	p := profile.New(
		time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		"Anna",
	)

	if err := client.SaveProfile(p); err != nil {
		t.Fatal(err)
	}

	got, err := client.GetProfile()
	if err != nil {
		t.Fatal(err)
	}

	if got == nil || !got.OnboardingCompleted || got.UserName != "Anna" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestReset(t *testing.T) {
	client := newTestClient(t)

	start := time.Date(2025, time.April, 1, 20, 0, 0, 0, time.UTC)

	if err := client.SaveSession(newSavedSession(start, 10)); err != nil {
		t.Fatal(err)
	}

	if err := client.SaveCheckup(&checkup.Checkup{
		ID:   uuid.NewString(),
		Date: start,
		Type: checkup.TypeRoutine,
	}); err != nil {
		t.Fatal(err)
	}

	if err := client.SaveProfile(profile.New(start, "")); err != nil {
		t.Fatal(err)
	}

	if err := client.Reset(); err != nil {
		t.Fatal(err)
	}

	sessions, err := client.RecentSessions(0)
	if err != nil {
		t.Fatal(err)
	}

	checkups, err := client.Checkups()
	if err != nil {
		t.Fatal(err)
	}

	p, err := client.GetProfile()
	if err != nil {
		t.Fatal(err)
	}

	if len(sessions) != 0 || len(checkups) != 0 || p != nil {
		t.Fatal("reset did not clear all records")
	}
}
