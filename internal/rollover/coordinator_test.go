package rollover

import (
	"testing"
	"time"

	"github.com/sadopc/zenscreen/internal/sleepdetect"
	"github.com/sadopc/zenscreen/internal/store"
)

var base = time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)

func newTestCoordinator(t *testing.T) (*Coordinator, *store.Store, *sleepdetect.Detector, *time.Time) {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	now := base
	clock := func() time.Time { return now }
	d := sleepdetect.NewAt(clock)
	return NewAt(s, d, clock), s, d, &now
}

func TestDateTag(t *testing.T) {
	if got := DateTag(base); got != "2025-06-09" {
		t.Fatalf("DateTag = %q", got)
	}
}

// ============================================================
// CheckAndReset
// ============================================================

func TestFirstRunResets(t *testing.T) {
	c, s, _, _ := newTestCoordinator(t)

	did, err := c.CheckAndReset()
	if err != nil {
		t.Fatal(err)
	}
	if !did {
		t.Fatal("first ever check should reset")
	}
	tag, _ := s.LastResetDate()
	if tag != "2025-06-09" {
		t.Fatalf("reset date not recorded: %q", tag)
	}
}

func TestSameDayIsNoOp(t *testing.T) {
	c, s, _, now := newTestCoordinator(t)
	c.CheckAndReset()

	// Later the same day: daily state written since the reset survives.
	*now = base.Add(6 * time.Hour)
	s.SetDailyBonus("2025-06-09", 10)

	did, err := c.CheckAndReset()
	if err != nil {
		t.Fatal(err)
	}
	if did {
		t.Fatal("second check on the same day must be a no-op")
	}
	bonus, _ := s.GetDailyBonus("2025-06-09")
	if bonus != 10 {
		t.Fatal("no-op check must not clear daily state")
	}
}

func TestNewDayClearsDailyState(t *testing.T) {
	c, s, _, now := newTestCoordinator(t)
	c.CheckAndReset()

	s.SetDailyBonus("2025-06-09", 10)
	s.SetUsageToday("2025-06-09", map[string]int{"instagram": 45})
	s.SetUsedPuzzleIDs("2025-06-09", []string{"k1"})

	*now = base.AddDate(0, 0, 1)
	did, err := c.CheckAndReset()
	if err != nil {
		t.Fatal(err)
	}
	if !did {
		t.Fatal("new day should reset")
	}

	bonus, _ := s.GetDailyBonus("2025-06-09")
	usage, _ := s.GetUsageToday("2025-06-09")
	ids, _ := s.GetUsedPuzzleIDs("2025-06-09")
	if bonus != 0 || usage != nil || ids != nil {
		t.Fatal("daily accumulators not cleared")
	}
	tag, _ := s.LastResetDate()
	if tag != "2025-06-10" {
		t.Fatalf("reset date not advanced: %q", tag)
	}
}

func TestResetPreservesDurableState(t *testing.T) {
	c, s, _, now := newTestCoordinator(t)
	c.CheckAndReset()

	s.SetBlockRule(store.BlockRule{AppID: "tiktok", Mode: store.ModeFullBlock})
	s.AppendSleepRecord(store.SleepRecord{ID: "s1", DurationMinutes: 480})
	settings := store.DefaultSettings()
	settings.DailyGoalMinutes = 90
	s.SaveSettings(settings)

	*now = base.AddDate(0, 0, 1)
	c.CheckAndReset()

	rules, _ := s.GetBlockRules()
	records, _ := s.GetSleepRecords()
	got, _ := s.GetSettings()
	if len(rules) != 1 || len(records) != 1 || got.DailyGoalMinutes != 90 {
		t.Fatal("rollover must not touch durable state")
	}
}

func TestResetDropsInFlightSleepInterval(t *testing.T) {
	c, _, d, now := newTestCoordinator(t)
	c.CheckAndReset()

	// Backgrounded late in the evening, rollover fires next morning.
	d.OnAppStateChange(sleepdetect.StateBackground)
	*now = base.AddDate(0, 0, 1)
	c.CheckAndReset()

	*now = now.Add(time.Hour)
	if d.OnAppStateChange(sleepdetect.StateActive) != nil {
		t.Fatal("rollover should drop the in-flight background interval")
	}
}
