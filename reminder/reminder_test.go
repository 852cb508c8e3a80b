package reminder

import (
	"testing"
	"time"

	"bump/internal/checkup"
)

type stubSource struct {
	checkups []checkup.Checkup
}

func (s *stubSource) Checkups() ([]checkup.Checkup, error) {
	return s.checkups, nil
}

type recordingNotifier struct {
	bodies []string
}

func (n *recordingNotifier) Notify(_, body string) error {
	n.bodies = append(n.bodies, body)
	return nil
}

var apptTime = time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)

func newTestScheduler(
	checkups []checkup.Checkup,
	now time.Time,
) (*Scheduler, *recordingNotifier) {
	notifier := &recordingNotifier{}

	s := NewScheduler(&stubSource{checkups: checkups}, notifier)
	s.clock = func() time.Time { return now }

	return s, notifier
}

func TestSweepFiresDueOffset(t *testing.T) {
	c := checkup.Checkup{
		ID:              "ck1",
		Date:            apptTime,
		Type:            checkup.TypeNTScan,
		ReminderEnabled: true,
		ReminderOffsets: checkup.DefaultReminderOffsets,
	}

	// exactly three hours before the appointment
	s, notifier := newTestScheduler([]checkup.Checkup{c}, apptTime.Add(-3*time.Hour))

	s.Sweep()

	if len(notifier.bodies) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.bodies))
	}
}

func TestSweepFiresEachOffsetOnce(t *testing.T) {
	c := checkup.Checkup{
		ID:              "ck1",
		Date:            apptTime,
		Type:            checkup.TypeRoutine,
		ReminderEnabled: true,
		ReminderOffsets: checkup.DefaultReminderOffsets,
	}

	s, notifier := newTestScheduler([]checkup.Checkup{c}, apptTime.Add(-24*time.Hour))

	s.Sweep()
	s.Sweep()

	if len(notifier.bodies) != 1 {
		t.Fatalf(
			"repeat sweeps must not re-fire: got %d notifications",
			len(notifier.bodies),
		)
	}
}

func TestSweepSkipsCompletedAndDisabled(t *testing.T) {
	checkups := []checkup.Checkup{
		{
			ID:              "done",
			Date:            apptTime,
			ReminderEnabled: true,
			ReminderOffsets: checkup.DefaultReminderOffsets,
			Completed:       true,
		},
		{
			ID:              "silent",
			Date:            apptTime,
			ReminderOffsets: checkup.DefaultReminderOffsets,
		},
	}

	s, notifier := newTestScheduler(checkups, apptTime.Add(-3*time.Hour))

	s.Sweep()

	if len(notifier.bodies) != 0 {
		t.Fatalf("expected no notifications, got %v", notifier.bodies)
	}
}

func TestSweepIgnoresOffsetsOutsideTheMinute(t *testing.T) {
	c := checkup.Checkup{
		ID:              "ck1",
		Date:            apptTime,
		ReminderEnabled: true,
		ReminderOffsets: checkup.DefaultReminderOffsets,
	}

	// five minutes late for the three-hour offset
	s, notifier := newTestScheduler(
		[]checkup.Checkup{c},
		apptTime.Add(-3*time.Hour).Add(5*time.Minute),
	)

	s.Sweep()

	if len(notifier.bodies) != 0 {
		t.Fatalf("stale offset fired: %v", notifier.bodies)
	}
}

func TestFormatLead(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{30, "30 minutes"},
		{180, "3 hours"},
		{1440, "1 day(s)"},
	}

	for _, tc := range cases {
		if got := formatLead(tc.minutes); got != tc.want {
			t.Errorf("formatLead(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
