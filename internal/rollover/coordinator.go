// Package rollover performs the once-per-calendar-day reset of all
// day-scoped state.
package rollover

import (
	"time"

	"github.com/sadopc/zenscreen/internal/sleepdetect"
	"github.com/sadopc/zenscreen/internal/store"
)

// dateLayout is the locale-stable calendar tag format.
const dateLayout = "2006-01-02"

// DateTag returns t's calendar tag.
func DateTag(t time.Time) string {
	return t.Format(dateLayout)
}

// Coordinator decides whether a daily reset is due and performs it.
// Callers invoke CheckAndReset at process start and on every transition
// to the foreground; repeat calls on the same day are no-ops.
type Coordinator struct {
	store    *store.Store
	detector *sleepdetect.Detector
	now      func() time.Time
}

func New(s *store.Store, d *sleepdetect.Detector) *Coordinator {
	return NewAt(s, d, time.Now)
}

// NewAt builds a coordinator on an injected clock, for tests.
func NewAt(s *store.Store, d *sleepdetect.Detector, now func() time.Time) *Coordinator {
	return &Coordinator{store: s, detector: d, now: now}
}

// CheckAndReset resets all daily accumulators exactly once per calendar
// day. Reports whether a reset was performed.
func (c *Coordinator) CheckAndReset() (bool, error) {
	today := DateTag(c.now())
	last, err := c.store.LastResetDate()
	if err != nil {
		return false, err
	}
	if last == today {
		return false, nil
	}

	if err := c.store.ResetDaily(); err != nil {
		return false, err
	}
	c.detector.Reset()

	if err := c.store.SetLastResetDate(today); err != nil {
		return false, err
	}
	return true, nil
}
