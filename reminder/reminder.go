// Package reminder schedules and delivers checkup reminder notifications.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/robfig/cron/v3"

	"bump/internal/checkup"
	"bump/internal/timeutil"
)

// checkSpec runs the reminder sweep once a minute.
const checkSpec = "* * * * *"

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(title, body string) error
}

// DesktopNotifier sends desktop notifications via the system notification
// service.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// CheckupSource supplies the checkups to watch.
type CheckupSource interface {
	Checkups() ([]checkup.Checkup, error)
}

// Scheduler fires each (checkup, offset) reminder pair at most once, sweeping
// on a cron cadence.
type Scheduler struct {
	cron     *cron.Cron
	source   CheckupSource
	notifier Notifier
	clock    func() time.Time
	fired    map[string]bool
}

// NewScheduler returns a scheduler that reads checkups from source and
// delivers through notifier.
func NewScheduler(source CheckupSource, notifier Notifier) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		source:   source,
		notifier: notifier,
		clock:    time.Now,
		fired:    make(map[string]bool),
	}
}

// Start begins the minute sweep and blocks until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(checkSpec, s.Sweep); err != nil {
		return fmt.Errorf("add reminder sweep: %w", err)
	}

	s.cron.Start()

	slog.Info("reminder watcher started")

	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()

	slog.Info("reminder watcher stopped")

	return nil
}

// Sweep checks every enabled reminder offset against the current minute and
// notifies for the ones that are due. Completed checkups never fire.
func (s *Scheduler) Sweep() {
	checkups, err := s.source.Checkups()
	if err != nil {
		slog.Error("loading checkups for reminder sweep", "error", err)
		return
	}

	now := s.clock()

	for _, c := range checkups {
		if c.Completed || !c.ReminderEnabled {
			continue
		}

		for _, mins := range c.ReminderOffsets {
			notifyAt := c.Date.Add(-time.Duration(mins) * time.Minute)

			if now.Before(notifyAt) || now.Sub(notifyAt) >= time.Minute {
				continue
			}

			key := fmt.Sprintf("%s/%d", c.ID, mins)
			if s.fired[key] {
				continue
			}

			s.fired[key] = true

			err := s.notifier.Notify("Checkup reminder", Message(c, mins))
			if err != nil {
				slog.Error(
					"delivering reminder",
					"checkup", c.ID,
					"error", err,
				)
			}
		}
	}
}

// Message formats the reminder body for a checkup due in the given number of
// minutes.
func Message(c checkup.Checkup, minutesBefore int) string {
	return fmt.Sprintf(
		"%s in %s (%s)",
		c.Type,
		formatLead(minutesBefore),
		c.Date.Format("Jan 02, 2006 15:04"),
	)
}

// formatLead renders a minutes-before offset as a human-friendly interval.
func formatLead(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", minutes)
	}

	hrs, _ := timeutil.MinsToHoursAndMins(minutes)

	if hrs < timeutil.HoursInADay {
		return fmt.Sprintf("%d hours", hrs)
	}

	return fmt.Sprintf("%d day(s)", hrs/timeutil.HoursInADay)
}
