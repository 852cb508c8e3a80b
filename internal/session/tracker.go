package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"bump/internal/timeutil"
)

// DefaultKickTarget is the number of recorded movements that completes a
// counting session.
const DefaultKickTarget = 10

// DefaultAutoSaveDelay is how long a completed session stays open before the
// auto-save callback fires.
const DefaultAutoSaveDelay = 2 * time.Second

// Clock supplies the current time. Injecting it keeps the tracker
// deterministic under test.
type Clock func() time.Time

// Tracker owns the single active counting session. Operations called in a
// state where they have no effect are no-ops, never errors: the tracker is an
// in-memory state container with defensive guards, not a fallible service.
type Tracker struct {
	clock         Clock
	onAutoSave    func(*Session)
	current       *Session
	autoSave      *time.Timer
	target        int
	autoSaveDelay time.Duration
	tracking      bool
	mu            sync.Mutex
}

// TrackerOption modifies a Tracker.
type TrackerOption func(*Tracker)

// WithClock replaces the wall clock.
func WithClock(clock Clock) TrackerOption {
	return func(t *Tracker) {
		t.clock = clock
	}
}

// WithKickTarget overrides the completion threshold.
func WithKickTarget(target int) TrackerOption {
	return func(t *Tracker) {
		t.target = target
	}
}

// WithAutoSaveDelay overrides the delay before a completed session is
// auto-saved.
func WithAutoSaveDelay(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		t.autoSaveDelay = d
	}
}

// WithAutoSave registers the callback invoked when a completed session is not
// acted on before the auto-save delay elapses. The callback receives a copy of
// the finalized session.
func WithAutoSave(fn func(*Session)) TrackerOption {
	return func(t *Tracker) {
		t.onAutoSave = fn
	}
}

// NewTracker returns an idle tracker.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		clock:         time.Now,
		target:        DefaultKickTarget,
		autoSaveDelay: DefaultAutoSaveDelay,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start creates a new session and begins tracking. It is idempotent: calling
// it while a session is already active returns the active session unchanged.
func (t *Tracker) Start() *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracking {
		return t.snapshot()
	}

	now := t.clock()

	t.current = &Session{
		ID:        uuid.NewString(),
		Date:      timeutil.RoundToStart(now),
		StartTime: now,
	}
	t.tracking = true

	return t.snapshot()
}

// Increment records one movement. It is a no-op when no session is active or
// when the session has already reached the kick target: the cap is an
// invariant of the tracker, not a courtesy of the caller. Reaching the target
// marks the session completed and schedules the auto-save callback.
func (t *Tracker) Increment() *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking || t.current == nil {
		return nil
	}

	if t.current.Count >= t.target {
		return t.snapshot()
	}

	t.current.Count++

	if t.current.Count >= t.target {
		t.current.Completed = true
		t.scheduleAutoSave()
	}

	return t.snapshot()
}

// End finalizes the active session: it sets the end time, computes the
// duration in whole minutes, and stops tracking. The session stays available
// through Current until Reset. Persisting it is the caller's concern. End is
// a no-op when no session is active.
func (t *Tracker) End() *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking || t.current == nil {
		return nil
	}

	t.cancelAutoSave()

	now := t.clock()

	t.current.EndTime = now
	t.current.Duration = timeutil.WholeMinutes(t.current.StartTime, now)
	t.tracking = false

	return t.snapshot()
}

// Reset discards the active session and returns the tracker to idle. It is
// valid from any state and cancels a pending auto-save.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelAutoSave()

	t.current = nil
	t.tracking = false
}

// Current returns a copy of the active session, or nil when idle.
func (t *Tracker) Current() *Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snapshot()
}

// Tracking reports whether a session is in progress.
func (t *Tracker) Tracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.tracking
}

// Target returns the kick target for this tracker.
func (t *Tracker) Target() int {
	return t.target
}

// scheduleAutoSave arms the auto-save timer. The callback re-checks state
// under the lock so an End or Reset that wins the race suppresses it.
func (t *Tracker) scheduleAutoSave() {
	if t.onAutoSave == nil {
		return
	}

	t.cancelAutoSave()

	t.autoSave = time.AfterFunc(t.autoSaveDelay, func() {
		t.mu.Lock()

		if !t.tracking || t.current == nil || !t.current.Completed {
			t.mu.Unlock()
			return
		}

		now := t.clock()

		t.current.EndTime = now
		t.current.Duration = timeutil.WholeMinutes(t.current.StartTime, now)
		t.tracking = false

		sess := t.snapshot()

		t.mu.Unlock()

		t.onAutoSave(sess)
	})
}

func (t *Tracker) cancelAutoSave() {
	if t.autoSave != nil {
		t.autoSave.Stop()
		t.autoSave = nil
	}
}

func (t *Tracker) snapshot() *Session {
	if t.current == nil {
		return nil
	}

	sess := *t.current

	return &sess
}
