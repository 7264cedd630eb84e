package focus

import (
	"testing"
	"time"

	"github.com/sadopc/zenscreen/internal/store"
)

var base = time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *store.Store, *time.Time) {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	now := base
	e := NewEngineAt(s, func() time.Time { return now })
	return e, s, &now
}

// ============================================================
// Start
// ============================================================

func TestStart(t *testing.T) {
	e, s, _ := newTestEngine(t)

	session, err := e.Start("docs", "Docs", 25, []string{"instagram", "tiktok"}, true)
	if err != nil {
		t.Fatal(err)
	}
	if session.ID == "" {
		t.Fatal("session needs an id")
	}
	if session.AppID != "docs" || session.DurationMinutes != 25 {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.EndTime != nil || session.Completed {
		t.Fatal("new session must be active and incomplete")
	}
	if !session.Grayscale || len(session.BlockedApps) != 2 {
		t.Fatalf("options not carried: %+v", session)
	}

	if e.Active() == nil {
		t.Fatal("engine should report the session active")
	}

	// Persisted both as the active pointer and in history
	persisted, _ := s.ActiveFocusSession()
	if persisted == nil || persisted.ID != session.ID {
		t.Fatal("active session not persisted")
	}
	history, _ := s.GetFocusSessions()
	if len(history) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(history))
	}
}

func TestStartRejectsNonPositiveDuration(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if _, err := e.Start("docs", "Docs", 0, nil, false); err == nil {
		t.Fatal("zero duration should be rejected")
	}
	if _, err := e.Start("docs", "Docs", -5, nil, false); err == nil {
		t.Fatal("negative duration should be rejected")
	}
	if e.Active() != nil {
		t.Fatal("rejected start must not activate a session")
	}
}

func TestStartWhileActiveAbortsPrior(t *testing.T) {
	e, s, now := newTestEngine(t)

	first, _ := e.Start("docs", "Docs", 25, nil, false)
	*now = base.Add(5 * time.Minute)
	second, err := e.Start("mail", "Mail", 10, nil, false)
	if err != nil {
		t.Fatal(err)
	}

	if e.Active().ID != second.ID {
		t.Fatal("second session should be the active one")
	}

	history, _ := s.GetFocusSessions()
	if len(history) != 2 {
		t.Fatalf("expected 2 history records, got %d", len(history))
	}
	for _, h := range history {
		if h.ID == first.ID {
			if h.Completed || h.EndTime == nil {
				t.Fatalf("prior session should be finalized as aborted: %+v", h)
			}
		}
	}
}

// ============================================================
// Stop and completion
// ============================================================

func TestStopWhenIdle(t *testing.T) {
	e, _, _ := newTestEngine(t)
	session, err := e.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if session != nil {
		t.Fatal("stop with no active session returns nil")
	}
}

func TestStopAborts(t *testing.T) {
	e, s, now := newTestEngine(t)
	e.Start("docs", "Docs", 25, nil, false)
	*now = base.Add(10 * time.Minute)

	session, err := e.Stop()
	if err != nil {
		t.Fatal(err)
	}
	if session.Completed {
		t.Fatal("early stop is an abort, not a completion")
	}
	if session.EndTime == nil || !session.EndTime.Equal(base.Add(10*time.Minute)) {
		t.Fatalf("end time not stamped: %+v", session.EndTime)
	}
	if e.Active() != nil {
		t.Fatal("engine should be idle after stop")
	}
	if persisted, _ := s.ActiveFocusSession(); persisted != nil {
		t.Fatal("persisted active session should be cleared")
	}
}

func TestCheckCompletionBeforeDeadline(t *testing.T) {
	e, _, now := newTestEngine(t)
	e.Start("docs", "Docs", 25, nil, false)
	*now = base.Add(24 * time.Minute)

	session, err := e.CheckCompletion()
	if err != nil {
		t.Fatal(err)
	}
	if session != nil {
		t.Fatal("session should still be running")
	}
	if e.Active() == nil {
		t.Fatal("session must stay active before the deadline")
	}
}

func TestCheckCompletionAtDeadline(t *testing.T) {
	e, s, now := newTestEngine(t)
	e.Start("docs", "Docs", 25, nil, false)
	*now = base.Add(25 * time.Minute)

	session, err := e.CheckCompletion()
	if err != nil {
		t.Fatal(err)
	}
	if session == nil || !session.Completed {
		t.Fatalf("expected a completed session, got %+v", session)
	}
	if e.Active() != nil {
		t.Fatal("engine should be idle after completion")
	}

	// Exactly one terminal transition: nothing left to stop or complete.
	if again, _ := e.CheckCompletion(); again != nil {
		t.Fatal("completion must not fire twice")
	}
	if stopped, _ := e.Stop(); stopped != nil {
		t.Fatal("stop after completion must be a no-op")
	}

	history, _ := s.GetFocusSessions()
	if len(history) != 1 || !history[0].Completed {
		t.Fatalf("history should hold the completed session: %+v", history)
	}
}

func TestCheckCompletionWhenIdle(t *testing.T) {
	e, _, _ := newTestEngine(t)
	if session, err := e.CheckCompletion(); err != nil || session != nil {
		t.Fatalf("idle check: session=%v err=%v", session, err)
	}
}

// ============================================================
// Elapsed / Remaining
// ============================================================

func TestElapsedAndRemaining(t *testing.T) {
	e, _, now := newTestEngine(t)

	if e.Elapsed() != 0 || e.Remaining() != 0 {
		t.Fatal("idle engine reports zero durations")
	}

	e.Start("docs", "Docs", 25, nil, false)
	*now = base.Add(10 * time.Minute)

	if e.Elapsed() != 10*time.Minute {
		t.Fatalf("elapsed = %v", e.Elapsed())
	}
	if e.Remaining() != 15*time.Minute {
		t.Fatalf("remaining = %v", e.Remaining())
	}
}

// ============================================================
// Restart recovery
// ============================================================

func TestResumePersistedSession(t *testing.T) {
	e, s, now := newTestEngine(t)
	started, _ := e.Start("docs", "Docs", 25, nil, false)

	// A fresh engine over the same store picks the session back up.
	*now = base.Add(5 * time.Minute)
	resumed := NewEngineAt(s, func() time.Time { return *now })
	active := resumed.Active()
	if active == nil || active.ID != started.ID {
		t.Fatal("restart should resume the persisted session")
	}
	if resumed.Remaining() != 20*time.Minute {
		t.Fatalf("resumed remaining = %v", resumed.Remaining())
	}
}
