package stats

import (
	"testing"
	"time"

	"bump/internal/session"
)

var now = time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)

func sessionAt(start time.Time, count, duration int) session.Session {
	return session.Session{
		StartTime: start,
		EndTime:   start.Add(time.Duration(duration) * time.Minute),
		Count:     count,
		Duration:  duration,
		Completed: count >= 10,
	}
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, now)

	if s.TotalSessions != 0 || s.AverageCount != 0 {
		t.Fatalf("empty stats should be zero, got %+v", s)
	}

	if len(s.Trend) != trendDays {
		t.Fatalf("trend should always span %d days, got %d", trendDays, len(s.Trend))
	}
}

func TestCompute(t *testing.T) {
	sessions := []session.Session{
		sessionAt(now.Add(-2*time.Hour), 10, 12),
		sessionAt(now.AddDate(0, 0, -1), 8, 20),
		sessionAt(now.AddDate(0, 0, -2), 6, 10),
	}

	s := Compute(sessions, now)

	if s.TotalSessions != 3 {
		t.Errorf("total sessions = %d, want 3", s.TotalSessions)
	}

	if s.TotalKicks != 24 {
		t.Errorf("total kicks = %d, want 24", s.TotalKicks)
	}

	if s.CompletedCount != 1 {
		t.Errorf("completed = %d, want 1", s.CompletedCount)
	}

	if s.AverageCount != 8 {
		t.Errorf("average count = %.1f, want 8.0", s.AverageCount)
	}

	if s.AverageDuration != 14 {
		t.Errorf("average duration = %.1f, want 14.0", s.AverageDuration)
	}

	// all sessions within a single week
	if s.WeeklyAverage != 3 {
		t.Errorf("weekly average = %.1f, want 3.0", s.WeeklyAverage)
	}
}

func TestTrendBins(t *testing.T) {
	sessions := []session.Session{
		sessionAt(now.Add(-time.Hour), 10, 10),
		sessionAt(now.Add(-2*time.Hour), 5, 10),
		sessionAt(now.AddDate(0, 0, -3), 7, 10),
		// outside the window
		sessionAt(now.AddDate(0, 0, -10), 9, 10),
	}

	s := Compute(sessions, now)

	if len(s.Trend) != trendDays {
		t.Fatalf("trend length = %d, want %d", len(s.Trend), trendDays)
	}

	today := s.Trend[trendDays-1]
	if today.Kicks != 15 {
		t.Errorf("today's kicks = %d, want 15", today.Kicks)
	}

	threeDaysAgo := s.Trend[trendDays-4]
	if threeDaysAgo.Kicks != 7 {
		t.Errorf("kicks three days ago = %d, want 7", threeDaysAgo.Kicks)
	}

	var total int
	for _, bin := range s.Trend {
		total += bin.Kicks
	}

	if total != 22 {
		t.Errorf("trend total = %d, want 22 (old session excluded)", total)
	}
}

func TestMostActiveHour(t *testing.T) {
	sessions := []session.Session{
		sessionAt(time.Date(2025, time.April, 13, 21, 30, 0, 0, time.UTC), 10, 10),
		sessionAt(time.Date(2025, time.April, 14, 21, 5, 0, 0, time.UTC), 10, 10),
		sessionAt(time.Date(2025, time.April, 14, 9, 0, 0, 0, time.UTC), 10, 10),
	}

	s := Compute(sessions, now)

	if s.MostActiveTime != "21:00–22:00" {
		t.Errorf("most active time = %q, want 21:00–22:00", s.MostActiveTime)
	}
}
