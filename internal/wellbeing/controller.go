// Package wellbeing is the session controller: a read-through layer over
// the store that owns the focus engine, sleep detector and rollover
// coordinator, and turns host events and user intents into decisions and
// persisted state.
package wellbeing

import (
	"fmt"
	"time"

	"github.com/sadopc/zenscreen/internal/blocking"
	"github.com/sadopc/zenscreen/internal/focus"
	"github.com/sadopc/zenscreen/internal/puzzle"
	"github.com/sadopc/zenscreen/internal/rollover"
	"github.com/sadopc/zenscreen/internal/schedule"
	"github.com/sadopc/zenscreen/internal/sleepdetect"
	"github.com/sadopc/zenscreen/internal/store"
)

type Controller struct {
	store    *store.Store
	focus    *focus.Engine
	detector *sleepdetect.Detector
	rollover *rollover.Coordinator
	now      func() time.Time

	// Last interstitial shown per app, advisory; reset with the process.
	lastInterstitial map[string]time.Time
}

func New(s *store.Store) *Controller {
	return NewAt(s, time.Now)
}

// NewAt builds a controller on an injected clock, for tests.
func NewAt(s *store.Store, now func() time.Time) *Controller {
	detector := sleepdetect.NewAt(now)
	return &Controller{
		store:            s,
		focus:            focus.NewEngineAt(s, now),
		detector:         detector,
		rollover:         rollover.NewAt(s, detector, now),
		now:              now,
		lastInterstitial: make(map[string]time.Time),
	}
}

func (c *Controller) today() string {
	return rollover.DateTag(c.now())
}

// --- Host lifecycle events ---

// OnForeground handles a transition to the foreground: the daily
// rollover runs first, then the sleep detector closes any background
// interval. An emitted sleep record is persisted before being returned.
func (c *Controller) OnForeground() (*store.SleepRecord, error) {
	if _, err := c.rollover.CheckAndReset(); err != nil {
		return nil, err
	}
	record := c.detector.OnAppStateChange(sleepdetect.StateActive)
	if record == nil {
		return nil, nil
	}
	if err := c.store.AppendSleepRecord(*record); err != nil {
		return nil, err
	}
	return record, nil
}

// OnBackground feeds the background transition to the sleep detector.
func (c *Controller) OnBackground() {
	c.detector.OnAppStateChange(sleepdetect.StateBackground)
}

// Startup runs the process-start rollover check.
func (c *Controller) Startup() error {
	_, err := c.rollover.CheckAndReset()
	return err
}

// Tick advances the focus completion boundary. Returns the finalized
// session when the countdown just expired, nil otherwise.
func (c *Controller) Tick() (*store.FocusSession, error) {
	return c.focus.CheckCompletion()
}

// --- Blocking decisions ---

// LaunchDecision is the blocking verdict for one app launch attempt.
type LaunchDecision struct {
	Blocked          bool
	Reason           string
	RemainingMinutes int
	ShowInterstitial bool
}

// BlockingContext assembles the current rules, focus state and usage
// into one decision context. Catalog usage acts as the mock usage
// source; the daily map overlays it.
func (c *Controller) BlockingContext() (blocking.Context, error) {
	rules, err := c.store.GetBlockRules()
	if err != nil {
		return blocking.Context{}, err
	}
	usage, err := c.UsageToday()
	if err != nil {
		return blocking.Context{}, err
	}
	return blocking.Context{
		Rules:        rules,
		FocusSession: c.focus.Active(),
		UsageToday:   usage,
	}, nil
}

// UsageToday returns per-app minutes used today: the seeded catalog
// numbers overlaid with anything the daily accumulator has recorded.
func (c *Controller) UsageToday() (map[string]int, error) {
	apps, err := c.store.GetApps()
	if err != nil {
		return nil, err
	}
	usage := make(map[string]int, len(apps))
	for _, a := range apps {
		usage[a.ID] = a.UsageMinutes
	}
	recorded, err := c.store.GetUsageToday(c.today())
	if err != nil {
		return nil, err
	}
	for id, minutes := range recorded {
		usage[id] = minutes
	}
	return usage, nil
}

// OnAppLaunch resolves the blocking decision for a launch attempt and
// applies the interstitial throttle. Rollover runs before any daily key
// is read so a stale usage map can never unblock an app.
func (c *Controller) OnAppLaunch(appID string) (LaunchDecision, error) {
	if _, err := c.rollover.CheckAndReset(); err != nil {
		return LaunchDecision{}, err
	}
	ctx, err := c.BlockingContext()
	if err != nil {
		return LaunchDecision{}, err
	}

	now := c.now()
	d := LaunchDecision{
		Blocked:          blocking.IsBlocked(appID, ctx),
		Reason:           blocking.BlockedReason(appID, ctx),
		RemainingMinutes: blocking.RemainingMinutes(appID, ctx),
	}
	if blocking.ShouldShowInterstitial(appID, ctx, c.lastInterstitial[appID], now) {
		d.ShowInterstitial = true
		c.lastInterstitial[appID] = now
	}
	return d, nil
}

// RecordUsage adds minutes to an app's usage for today, in both the
// daily accumulator and the catalog record. Stands in for the external
// usage collector.
func (c *Controller) RecordUsage(appID string, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("record usage: negative minutes")
	}
	today := c.today()
	usage, err := c.store.GetUsageToday(today)
	if err != nil {
		return err
	}
	if usage == nil {
		usage = make(map[string]int)
	}
	current, err := c.UsageToday()
	if err != nil {
		return err
	}
	usage[appID] = current[appID] + minutes
	if err := c.store.SetUsageToday(today, usage); err != nil {
		return err
	}
	return c.store.UpdateApp(appID, func(a *store.AppRecord) {
		a.UsageMinutes = usage[appID]
		a.Opens++
	})
}

// --- Focus sessions ---

func (c *Controller) StartFocus(appID, appName string, durationMinutes int, blockedApps []string, grayscale bool) (*store.FocusSession, error) {
	return c.focus.Start(appID, appName, durationMinutes, blockedApps, grayscale)
}

func (c *Controller) StopFocus() (*store.FocusSession, error) {
	return c.focus.Stop()
}

func (c *Controller) ActiveFocus() *store.FocusSession { return c.focus.Active() }
func (c *Controller) FocusRemaining() time.Duration    { return c.focus.Remaining() }
func (c *Controller) FocusElapsed() time.Duration      { return c.focus.Elapsed() }

func (c *Controller) FocusHistory() ([]store.FocusSession, error) {
	return c.store.GetFocusSessions()
}

// --- Blue light ---

func (c *Controller) blueLight() (schedule.BlueLight, error) {
	settings, err := c.store.GetSettings()
	if err != nil {
		return schedule.BlueLight{}, err
	}
	return schedule.BlueLight{
		Bedtime:  settings.Bedtime,
		WakeTime: settings.WakeTime,
		Enabled:  settings.BlueLightEnabled,
	}, nil
}

// BlueLightActive reports whether the filter overlay should be shown.
func (c *Controller) BlueLightActive() bool {
	cfg, err := c.blueLight()
	if err != nil {
		return false
	}
	return schedule.Active(cfg, c.now())
}

// BlueLightIntensity returns the current tint strength: the scheduled
// ramp when auto-schedule is on, the fixed user intensity otherwise.
func (c *Controller) BlueLightIntensity() int {
	settings, err := c.store.GetSettings()
	if err != nil {
		return 0
	}
	cfg := schedule.BlueLight{
		Bedtime:  settings.Bedtime,
		WakeTime: settings.WakeTime,
		Enabled:  settings.BlueLightEnabled,
	}
	if !schedule.Active(cfg, c.now()) {
		return 0
	}
	if settings.BlueLightAuto {
		return schedule.SuggestedIntensity(cfg, c.now())
	}
	return settings.BlueLightIntensity
}

// --- Sleep ---

// LogManualSleep appends a user-entered sleep record. Manual records
// have no duration lower bound.
func (c *Controller) LogManualSleep(start, end time.Time) (*store.SleepRecord, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("log sleep: end not after start")
	}
	record := store.SleepRecord{
		ID:              fmt.Sprintf("sleep_%d", c.now().UnixNano()),
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: int(end.Sub(start) / time.Minute),
	}
	if err := c.store.AppendSleepRecord(record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Controller) RateSleep(id string, rating int) error {
	return c.store.RateSleepRecord(id, rating)
}

func (c *Controller) SleepRecords() ([]store.SleepRecord, error) {
	return c.store.GetSleepRecords()
}

// --- Puzzles ---

func (c *Controller) PuzzleTiers() ([]store.PuzzleExtension, error) {
	return c.store.GetPuzzleTiers(c.today(), puzzle.DefaultTiers())
}

func (c *Controller) PuzzlesForTier(tier int) ([]puzzle.Puzzle, error) {
	used, err := c.store.GetUsedPuzzleIDs(c.today())
	if err != nil {
		return nil, err
	}
	return puzzle.ForTier(tier, used), nil
}

func (c *Controller) DailyBonus() (int, error) {
	return c.store.GetDailyBonus(c.today())
}

// SubmitAnswer grades one puzzle answer. A correct answer consumes the
// puzzle id for the day and advances the tier; completing a tier awards
// its bonus minutes, capped per day.
func (c *Controller) SubmitAnswer(tier int, puzzleID string, answer int) (correct bool, awarded int, err error) {
	p, ok := puzzle.ByID(puzzleID)
	if !ok {
		return false, 0, fmt.Errorf("submit answer: unknown puzzle %q", puzzleID)
	}
	if answer != p.CorrectAnswer {
		return false, 0, nil
	}

	today := c.today()
	used, err := c.store.GetUsedPuzzleIDs(today)
	if err != nil {
		return true, 0, err
	}
	for _, id := range used {
		if id == puzzleID {
			return true, 0, fmt.Errorf("submit answer: puzzle %q already used today", puzzleID)
		}
	}

	tiers, err := c.PuzzleTiers()
	if err != nil {
		return true, 0, err
	}
	tiers, earned, err := puzzle.RecordSolve(tiers, tier)
	if err != nil {
		return true, 0, err
	}

	if err := c.store.SetUsedPuzzleIDs(today, append(used, puzzleID)); err != nil {
		return true, 0, err
	}
	if err := c.store.SetPuzzleTiers(today, tiers); err != nil {
		return true, 0, err
	}
	if earned == 0 {
		return true, 0, nil
	}

	bonus, err := c.store.GetDailyBonus(today)
	if err != nil {
		return true, 0, err
	}
	capped := puzzle.AwardBonus(bonus, earned)
	if err := c.store.SetDailyBonus(today, capped); err != nil {
		return true, 0, err
	}
	return true, capped - bonus, nil
}

// --- Rules and settings ---

// SetBlockRule validates and persists one per-app rule.
func (c *Controller) SetBlockRule(rule store.BlockRule) error {
	switch rule.Mode {
	case store.ModeFullBlock, store.ModeUnrestricted:
		rule.DailyLimitMinutes = 0
	case store.ModeTimeLimit:
		if rule.DailyLimitMinutes <= 0 {
			return fmt.Errorf("set rule: time_limit needs a positive daily limit")
		}
	default:
		return fmt.Errorf("set rule: unknown mode %q", rule.Mode)
	}
	return c.store.SetBlockRule(rule)
}

func (c *Controller) RemoveBlockRule(appID string) error {
	return c.store.RemoveBlockRule(appID)
}

func (c *Controller) BlockRules() ([]store.BlockRule, error) {
	return c.store.GetBlockRules()
}

func (c *Controller) Settings() (store.UserSettings, error) {
	return c.store.GetSettings()
}

// UpdateSettings validates and persists the settings document. Invalid
// input leaves the prior state untouched.
func (c *Controller) UpdateSettings(settings store.UserSettings) error {
	if settings.DailyGoalMinutes <= 0 {
		return fmt.Errorf("update settings: daily goal must be positive")
	}
	if settings.BlueLightIntensity < 0 || settings.BlueLightIntensity > 100 {
		return fmt.Errorf("update settings: intensity %d out of range", settings.BlueLightIntensity)
	}
	if _, err := schedule.ParseWindow(settings.Bedtime, settings.WakeTime); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return c.store.SaveSettings(settings)
}

func (c *Controller) Apps() ([]store.AppRecord, error) {
	return c.store.GetApps()
}

// --- Aggregates ---

// Summary is the dashboard-level rollup of today's activity.
type Summary struct {
	TotalScreenTime    int // minutes
	TotalOpens         int
	TotalNotifications int
	DailyGoalMinutes   int
	OverGoalMinutes    int // 0 when under goal
	BonusMinutes       int
}

func (c *Controller) Summarize() (Summary, error) {
	apps, err := c.store.GetApps()
	if err != nil {
		return Summary{}, err
	}
	usage, err := c.UsageToday()
	if err != nil {
		return Summary{}, err
	}
	settings, err := c.store.GetSettings()
	if err != nil {
		return Summary{}, err
	}
	bonus, err := c.DailyBonus()
	if err != nil {
		return Summary{}, err
	}

	s := Summary{DailyGoalMinutes: settings.DailyGoalMinutes, BonusMinutes: bonus}
	for _, a := range apps {
		s.TotalScreenTime += usage[a.ID]
		s.TotalOpens += a.Opens
		s.TotalNotifications += a.Notifications
	}
	if over := s.TotalScreenTime - (s.DailyGoalMinutes + bonus); over > 0 {
		s.OverGoalMinutes = over
	}
	return s, nil
}
