// Package counter operates the interactive movement-counting screen.
package counter

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"bump/config"
	"bump/internal/session"
	"bump/store"
)

const (
	padding  = 2
	maxWidth = 60
)

type keymap struct {
	record key.Binding
	save   key.Binding
	cancel key.Binding
	quit   key.Binding
}

var defaultKeymap = keymap{
	record: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "record a kick"),
	),
	save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit without saving"),
	),
}

// Counter is the bubbletea model for one counting session.
type Counter struct {
	tracker   *session.Tracker
	db        store.DB
	opts      *config.AppConfig
	autoSaved chan *session.Session
	saved     *session.Session
	err       error
	progress  progress.Model
	help      help.Model
	elapsed   time.Duration
}

type (
	// tickMsg advances the elapsed-time display once per second. It only
	// reads the session start time and never mutates tracker state.
	tickMsg time.Time

	// autoSavedMsg carries a session the tracker finalized on its own after
	// the completion delay.
	autoSavedMsg *session.Session

	// savedMsg signals that the session was persisted and the screen should
	// close.
	savedMsg struct{}
)

// New creates a counter for a fresh tracking session.
func New(db store.DB, cfg *config.AppConfig) *Counter {
	c := &Counter{
		db:        db,
		opts:      cfg,
		autoSaved: make(chan *session.Session, 1),
		progress:  progress.New(progress.WithDefaultGradient()),
		help:      help.New(),
	}

	c.tracker = session.NewTracker(
		session.WithKickTarget(cfg.KickTarget),
		session.WithAutoSaveDelay(cfg.AutoSaveDelay),
		session.WithAutoSave(func(s *session.Session) {
			c.autoSaved <- s
		}),
	)

	return c
}

// Tracker exposes the underlying state machine.
func (c *Counter) Tracker() *session.Tracker {
	return c.tracker
}

// Saved returns the session persisted by this run, or nil if the run was
// cancelled.
func (c *Counter) Saved() *session.Session {
	return c.saved
}

func (c *Counter) Init() tea.Cmd {
	c.tracker.Start()

	return tea.Batch(tick(), c.waitForAutoSave())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForAutoSave relays the tracker's auto-save callback into the program's
// message loop.
func (c *Counter) waitForAutoSave() tea.Cmd {
	return func() tea.Msg {
		return autoSavedMsg(<-c.autoSaved)
	}
}
