// Package focus owns the idle/active/terminal lifecycle of timed focus
// sessions.
package focus

import (
	"fmt"
	"time"

	"github.com/sadopc/zenscreen/internal/store"
)

// Engine holds the single active focus session. The active field is the
// only terminal-transition guard: Stop and CheckCompletion both clear it,
// so exactly one of them finalizes a session.
type Engine struct {
	store  *store.Store
	now    func() time.Time
	active *store.FocusSession
}

// NewEngine builds the engine, resuming a persisted active session if
// one survived a restart.
func NewEngine(s *store.Store) *Engine {
	return NewEngineAt(s, time.Now)
}

// NewEngineAt builds an engine on an injected clock, for tests.
func NewEngineAt(s *store.Store, now func() time.Time) *Engine {
	e := &Engine{store: s, now: now}
	if active, err := s.ActiveFocusSession(); err == nil {
		e.active = active
	}
	return e
}

// Active returns the running session, nil when idle.
func (e *Engine) Active() *store.FocusSession {
	return e.active
}

// Elapsed returns how long the active session has been running, zero
// when idle.
func (e *Engine) Elapsed() time.Duration {
	if e.active == nil {
		return 0
	}
	return e.now().Sub(e.active.StartTime)
}

// Remaining returns the time left until the active session completes.
func (e *Engine) Remaining() time.Duration {
	if e.active == nil {
		return 0
	}
	total := time.Duration(e.active.DurationMinutes) * time.Minute
	return total - e.Elapsed()
}

// Start activates a new session. A still-active prior session is
// finalized as aborted first, so two sessions never run at once.
func (e *Engine) Start(appID, appName string, durationMinutes int, blockedApps []string, grayscale bool) (*store.FocusSession, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("start focus: duration %d minutes", durationMinutes)
	}
	if e.active != nil {
		if _, err := e.Stop(); err != nil {
			return nil, err
		}
	}

	now := e.now()
	session := &store.FocusSession{
		ID:              fmt.Sprintf("focus_%d", now.UnixNano()),
		AppID:           appID,
		AppName:         appName,
		StartTime:       now,
		DurationMinutes: durationMinutes,
		BlockedApps:     blockedApps,
		Grayscale:       grayscale,
	}
	if err := e.store.SetActiveFocusSession(session); err != nil {
		return nil, err
	}
	if err := e.store.SaveFocusSession(*session); err != nil {
		return nil, err
	}
	e.active = session
	return session, nil
}

// Stop aborts the active session. The record is still kept in history,
// with Completed false. A no-op when idle.
func (e *Engine) Stop() (*store.FocusSession, error) {
	if e.active == nil {
		return nil, nil
	}
	return e.finalize(false)
}

// CheckCompletion finalizes the active session once its duration has
// elapsed. Returns nil while the session is still running or when idle.
// Driven by the host tick.
func (e *Engine) CheckCompletion() (*store.FocusSession, error) {
	if e.active == nil {
		return nil, nil
	}
	if e.Elapsed() < time.Duration(e.active.DurationMinutes)*time.Minute {
		return nil, nil
	}
	return e.finalize(true)
}

func (e *Engine) finalize(completed bool) (*store.FocusSession, error) {
	session := e.active
	end := e.now()
	session.EndTime = &end
	session.Completed = completed

	if err := e.store.SaveFocusSession(*session); err != nil {
		return nil, err
	}
	if err := e.store.ClearActiveFocusSession(); err != nil {
		return nil, err
	}
	e.active = nil
	return session, nil
}
