// Package stats reports movement-counting statistics.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"bump/internal/session"
	"bump/internal/timeutil"
	"bump/internal/ui"
)

const (
	barChartChar  = "▇"
	maxBarLength  = 30
	noSessionsMsg = "No counting sessions recorded yet"
)

const trendDays = 7

// Stats summarizes saved counting sessions.
type Stats struct {
	MostActiveTime  string    `json:"most_active_time,omitempty"`
	Trend           []DayBin  `json:"trend"`
	TotalSessions   int       `json:"total_sessions"`
	TotalKicks      int       `json:"total_kicks"`
	CompletedCount  int       `json:"completed_sessions"`
	AverageCount    float64   `json:"average_count"`
	AverageDuration float64   `json:"average_duration_mins"`
	WeeklyAverage   float64   `json:"weekly_average"`
}

// DayBin is one day of the recent kick trend.
type DayBin struct {
	Date  time.Time `json:"date"`
	Kicks int       `json:"kicks"`
}

// Compute aggregates the given sessions as of now.
func Compute(sessions []session.Session, now time.Time) *Stats {
	s := &Stats{}

	if len(sessions) == 0 {
		s.Trend = trendBins(nil, now)
		return s
	}

	hourly := make(map[int]int)

	var totalDuration int

	first := sessions[0].StartTime

	for _, sess := range sessions {
		s.TotalSessions++
		s.TotalKicks += sess.Count
		totalDuration += sess.Duration

		if sess.Completed {
			s.CompletedCount++
		}

		hourly[sess.StartTime.Hour()]++

		if sess.StartTime.Before(first) {
			first = sess.StartTime
		}
	}

	s.AverageCount = float64(s.TotalKicks) / float64(s.TotalSessions)
	s.AverageDuration = float64(totalDuration) / float64(s.TotalSessions)
	s.MostActiveTime = mostActiveHour(hourly)
	s.WeeklyAverage = weeklyAverage(s.TotalSessions, first, now)
	s.Trend = trendBins(sessions, now)

	return s
}

// weeklyAverage is sessions per week over the span from the first recorded
// session to now, never dividing by less than one week.
func weeklyAverage(total int, first, now time.Time) float64 {
	days := timeutil.DaysBetween(first, now)

	weeks := float64(days) / 7
	if weeks < 1 {
		weeks = 1
	}

	return float64(total) / weeks
}

func mostActiveHour(hourly map[int]int) string {
	best, bestCount := -1, 0

	for hour, count := range hourly {
		if count > bestCount || (count == bestCount && hour < best) {
			best, bestCount = hour, count
		}
	}

	if best < 0 {
		return ""
	}

	return fmt.Sprintf("%02d:00–%02d:00", best, (best+1)%24)
}

// trendBins buckets kick counts per day for the trailing week, oldest first.
func trendBins(sessions []session.Session, now time.Time) []DayBin {
	bins := make([]DayBin, trendDays)

	for i := range bins {
		bins[i].Date = timeutil.RoundToStart(
			now.AddDate(0, 0, -(trendDays - 1 - i)),
		)
	}

	for _, sess := range sessions {
		day := timeutil.RoundToStart(sess.StartTime)

		for i := range bins {
			if bins[i].Date.Equal(day) {
				bins[i].Kicks += sess.Count
				break
			}
		}
	}

	return bins
}

// ToJSON marshals the stats for machine consumption.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Render writes a human-readable report.
func (s *Stats) Render(w io.Writer) {
	if s.TotalSessions == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	summary := [][]string{
		{"METRIC", "VALUE"},
		{"Total sessions", fmt.Sprintf("%d", s.TotalSessions)},
		{"Completed sessions", fmt.Sprintf("%d", s.CompletedCount)},
		{"Total kicks", fmt.Sprintf("%d", s.TotalKicks)},
		{"Average kicks per session", fmt.Sprintf("%.1f", s.AverageCount)},
		{"Average duration (mins)", fmt.Sprintf("%.1f", s.AverageDuration)},
		{"Sessions per week", fmt.Sprintf("%.1f", s.WeeklyAverage)},
	}

	if s.MostActiveTime != "" {
		summary = append(summary, []string{"Most active time", s.MostActiveTime})
	}

	ui.PrintTable(summary, w)

	s.renderTrend(w)
}

// renderTrend prints a bar chart of kicks per day for the trailing week.
func (s *Stats) renderTrend(w io.Writer) {
	max := 0

	for _, bin := range s.Trend {
		if bin.Kicks > max {
			max = bin.Kicks
		}
	}

	if max == 0 {
		return
	}

	fmt.Fprintf(w, "%s\n\n", ui.Highlight("Kicks in the last 7 days"))

	for _, bin := range s.Trend {
		barLength := bin.Kicks * maxBarLength / max

		fmt.Fprintf(
			w,
			"%s %s %d\n",
			bin.Date.Format("Mon Jan 02"),
			ui.Green(strings.Repeat(barChartChar, barLength)),
			bin.Kicks,
		)
	}

	fmt.Fprintln(w)
}
