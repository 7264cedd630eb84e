// Package sleepdetect infers sleep sessions from app foreground and
// background transitions.
package sleepdetect

import (
	"fmt"
	"time"

	"github.com/sadopc/zenscreen/internal/store"
)

// Threshold is the minimum background duration considered sleep.
const Threshold = 2 * time.Hour

// AppState is the host-reported foreground state.
type AppState string

const (
	StateActive     AppState = "active"
	StateBackground AppState = "background"
	StateInactive   AppState = "inactive"
)

// Detector is the single-instance sleep detector. It holds only the
// timestamp of the last foreground-to-background transition; the host
// constructs exactly one per process and owns its lifetime.
type Detector struct {
	backgroundedAt time.Time
	now            func() time.Time
}

func New() *Detector {
	return &Detector{now: time.Now}
}

// NewAt builds a detector on an injected clock, for tests.
func NewAt(now func() time.Time) *Detector {
	return &Detector{now: now}
}

// OnAppStateChange feeds one transition into the detector. Returning to
// the foreground after at least Threshold in the background emits one
// sleep record; every other transition returns nil. A background
// interval never produces more than one record.
func (d *Detector) OnAppStateChange(next AppState) *store.SleepRecord {
	switch next {
	case StateBackground, StateInactive:
		if d.backgroundedAt.IsZero() {
			d.backgroundedAt = d.now()
		}
		return nil
	case StateActive:
		if d.backgroundedAt.IsZero() {
			return nil
		}
		start := d.backgroundedAt
		d.backgroundedAt = time.Time{}

		end := d.now()
		elapsed := end.Sub(start)
		if elapsed < Threshold {
			return nil
		}
		return &store.SleepRecord{
			ID:              fmt.Sprintf("sleep_%d", end.UnixNano()),
			StartTime:       start,
			EndTime:         end,
			DurationMinutes: int(elapsed / time.Minute),
			AutoDetected:    true,
		}
	default:
		return nil
	}
}

// Reset clears detector state. Called at day rollover; an in-flight
// background interval spanning the rollover is dropped.
func (d *Detector) Reset() {
	d.backgroundedAt = time.Time{}
}

// Quality labels a sleep duration for display.
func Quality(durationMinutes int) string {
	switch {
	case durationMinutes >= 8*60:
		return "excellent"
	case durationMinutes >= 7*60:
		return "good"
	case durationMinutes >= 6*60:
		return "fair"
	default:
		return "poor"
	}
}
