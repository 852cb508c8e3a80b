package checkup

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var apptTime = time.Date(2025, time.May, 20, 9, 0, 0, 0, time.UTC)

func TestReminderTimes(t *testing.T) {
	c := Checkup{
		Date:            apptTime,
		Type:            TypeGlucoseTest,
		ReminderEnabled: true,
		ReminderOffsets: DefaultReminderOffsets,
	}

	got := c.ReminderTimes()

	want := []time.Time{
		apptTime.Add(-24 * time.Hour),
		apptTime.Add(-3 * time.Hour),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("reminder times mismatch (-want +got):\n%s", diff)
	}
}

func TestReminderTimesDisabled(t *testing.T) {
	c := Checkup{
		Date:            apptTime,
		ReminderOffsets: DefaultReminderOffsets,
	}

	if got := c.ReminderTimes(); got != nil {
		t.Fatalf("disabled reminders should yield nothing, got %v", got)
	}
}

func TestUpcoming(t *testing.T) {
	now := apptTime.Add(-12 * time.Hour)

	checkups := []Checkup{
		{ID: "past", Date: now.Add(-time.Hour)},
		{ID: "soon", Date: apptTime},
		{ID: "done", Date: apptTime, Completed: true},
		{ID: "later", Date: now.Add(48 * time.Hour)},
		{ID: "sooner", Date: now.Add(2 * time.Hour)},
	}

	got := Upcoming(checkups, now, DefaultUpcomingWindow)

	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming checkups, got %d", len(got))
	}

	if got[0].ID != "sooner" || got[1].ID != "soon" {
		t.Errorf("upcoming not sorted soonest first: %v, %v", got[0].ID, got[1].ID)
	}
}

func TestValidType(t *testing.T) {
	for _, typ := range Types {
		if !ValidType(typ) {
			t.Errorf("%q should be valid", typ)
		}
	}

	if ValidType(Type("dentist")) {
		t.Error("unknown type accepted")
	}
}

func TestTemplatesAreOrdered(t *testing.T) {
	for i := 1; i < len(Templates); i++ {
		if Templates[i].Week <= Templates[i-1].Week {
			t.Errorf(
				"template %q (week %d) out of order",
				Templates[i].Type,
				Templates[i].Week,
			)
		}
	}
}
