package pregnancy

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"bump/internal/timeutil"
)

var now = time.Date(2025, time.April, 15, 9, 30, 0, 0, time.UTC)

func TestWeeksPregnant(t *testing.T) {
	cases := []struct {
		name      string
		dueDate   time.Time
		wantWeeks int
		wantDays  int
	}{
		{
			name:      "due in 12 weeks means 28 weeks pregnant",
			dueDate:   now.AddDate(0, 0, 84),
			wantWeeks: 28,
			wantDays:  0,
		},
		{
			name:      "due today means 40 weeks",
			dueDate:   now,
			wantWeeks: 40,
			wantDays:  0,
		},
		{
			name:      "partial week",
			dueDate:   now.AddDate(0, 0, 80),
			wantWeeks: 28,
			wantDays:  4,
		},
		{
			name:      "overdue keeps counting",
			dueDate:   now.AddDate(0, 0, -3),
			wantWeeks: 40,
			wantDays:  3,
		},
		{
			name:      "before the start date floors the week",
			dueDate:   now.AddDate(0, 0, GestationDays+3),
			wantWeeks: -1,
			wantDays:  4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			weeks, days := WeeksPregnant(tc.dueDate, now)

			if weeks != tc.wantWeeks || days != tc.wantDays {
				t.Fatalf(
					"WeeksPregnant = (%d, %d), want (%d, %d)",
					weeks,
					days,
					tc.wantWeeks,
					tc.wantDays,
				)
			}
		})
	}
}

// The weeks/days decomposition must recombine to the exact calendar-day
// count since the start date for any offset, including negative ones.
func TestWeeksPregnantRecombines(t *testing.T) {
	for offset := -300; offset <= 300; offset++ {
		dueDate := now.AddDate(0, 0, offset)

		weeks, days := WeeksPregnant(dueDate, now)

		if days < 0 || days > 6 {
			t.Fatalf("offset %d: leftover days out of range: %d", offset, days)
		}

		total := timeutil.DaysBetween(StartDate(dueDate), now)
		if weeks*7+days != total {
			t.Fatalf(
				"offset %d: %d*7+%d != %d",
				offset,
				weeks,
				days,
				total,
			)
		}
	}
}

func TestDaysUntilDue(t *testing.T) {
	if got := DaysUntilDue(now.AddDate(0, 0, 84), now); got != 84 {
		t.Errorf("expected 84 days until due, got %d", got)
	}

	if got := DaysUntilDue(now.AddDate(0, 0, -5), now); got != -5 {
		t.Errorf("expected -5 days until due, got %d", got)
	}
}

func TestTrimesterOf(t *testing.T) {
	cases := []struct {
		weeks int
		want  Trimester
	}{
		{0, TrimesterEarly},
		{13, TrimesterEarly},
		{14, TrimesterMid},
		{27, TrimesterMid},
		{28, TrimesterLate},
		{42, TrimesterLate},
	}

	for _, tc := range cases {
		if got := TrimesterOf(tc.weeks); got != tc.want {
			t.Errorf("TrimesterOf(%d) = %s, want %s", tc.weeks, got, tc.want)
		}
	}
}

// TrimesterOf must partition the non-negative integers into exactly three
// contiguous ranges.
func TestTrimesterPartition(t *testing.T) {
	var transitions int

	prev := TrimesterOf(0)

	for weeks := 1; weeks <= 60; weeks++ {
		cur := TrimesterOf(weeks)
		if cur != prev {
			transitions++
			prev = cur
		}
	}

	if transitions != 2 {
		t.Fatalf("expected 2 trimester transitions, got %d", transitions)
	}
}

func TestSizeForWeek(t *testing.T) {
	for _, weeks := range []int{3, 41, -1, 100} {
		if got := SizeForWeek(weeks); got != fallbackSize {
			t.Errorf("SizeForWeek(%d) = %v, want fallback", weeks, got)
		}
	}

	for weeks := minSizeWeek; weeks <= maxSizeWeek; weeks++ {
		got := SizeForWeek(weeks)
		if got == fallbackSize {
			t.Errorf("SizeForWeek(%d) returned the fallback", weeks)
		}

		if got.Name == "" || got.Emoji == "" || got.LengthCm <= 0 {
			t.Errorf("SizeForWeek(%d) is incomplete: %+v", weeks, got)
		}
	}
}

func TestGetInfo(t *testing.T) {
	got := GetInfo(now.AddDate(0, 0, 84), now)

	want := Info{
		Weeks:        28,
		Days:         0,
		DaysUntilDue: 84,
		Trimester:    TrimesterLate,
		BabySize:     babySizes[28],
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("GetInfo mismatch (-want +got):\n%s", diff)
	}
}
