package counter

import (
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/kballard/go-shellquote"

	"bump/internal/session"
)

func (c *Counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if os.Getenv("BUMP_DEBUG") != "" {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tickMsg:
		if sess := c.tracker.Current(); sess != nil && c.tracker.Tracking() {
			c.elapsed = sess.Elapsed(time.Time(msg))
		}

		return c, tick()

	case autoSavedMsg:
		return c, c.persist(msg)

	case savedMsg:
		return c, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.record):
			c.tracker.Increment()
			return c, nil

		case key.Matches(msg, defaultKeymap.save):
			sess := c.tracker.End()
			if sess == nil || sess.Count == 0 {
				// nothing worth saving yet
				c.tracker.Reset()
				return c, tea.Quit
			}

			return c, c.persist(sess)

		case key.Matches(msg, defaultKeymap.cancel),
			key.Matches(msg, defaultKeymap.quit):
			c.tracker.Reset()

			return c, tea.Quit
		}

	case tea.WindowSizeMsg:
		c.progress.Width = msg.Width - padding*2 - 4
		if c.progress.Width > maxWidth {
			c.progress.Width = maxWidth
		}

		return c, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var cmd tea.Cmd

		progressModel, cmd := c.progress.Update(msg)
		c.progress, _ = progressModel.(progress.Model)

		return c, cmd
	}

	return c, nil
}

// persist appends the finalized session to history, runs the post-session
// hook, and schedules the screen to close.
func (c *Counter) persist(sess *session.Session) tea.Cmd {
	err := c.db.SaveSession(sess)
	if err != nil {
		c.err = err
		return tea.Quit
	}

	c.saved = sess
	c.tracker.Reset()

	if err := c.runSessionCmd(c.opts.SessionCmd); err != nil {
		slog.Error("running session_cmd", "error", err)
	}

	// brief pause so the confirmation is visible before the screen closes
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return savedMsg{}
	})
}

// runSessionCmd executes the configured post-session command.
func (c *Counter) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}
