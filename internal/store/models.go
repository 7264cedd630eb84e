package store

import "time"

// AppRecord is one tracked app from the catalog. Usage fields are written
// by the usage collector; DailyLimit and Blocked are user-edited.
type AppRecord struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	UsageMinutes  int    `json:"usage_minutes"`
	DailyLimit    int    `json:"daily_limit"` // minutes, 0 = unlimited
	Opens         int    `json:"opens"`
	Notifications int    `json:"notifications"`
	Blocked       bool   `json:"blocked"`
	ShortForm     bool   `json:"short_form"`
}

// BlockMode is the per-app policy kind.
type BlockMode string

const (
	ModeFullBlock    BlockMode = "full_block"
	ModeTimeLimit    BlockMode = "time_limit"
	ModeUnrestricted BlockMode = "unrestricted"
)

// BlockRule is a per-app blocking policy. At most one rule per app.
type BlockRule struct {
	AppID             string    `json:"app_id"`
	AppName           string    `json:"app_name"`
	Mode              BlockMode `json:"mode"`
	DailyLimitMinutes int       `json:"daily_limit_minutes,omitempty"` // time_limit only
}

// FocusSession is one timed focus interval. All durations are minutes;
// elapsed time is derived from the timestamps.
type FocusSession struct {
	ID              string     `json:"id"`
	AppID           string     `json:"app_id"`
	AppName         string     `json:"app_name"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"` // nil while active
	DurationMinutes int        `json:"duration_minutes"`
	BlockedApps     []string   `json:"blocked_apps"`
	Grayscale       bool       `json:"grayscale"`
	Completed       bool       `json:"completed"`
}

// SleepRecord is one sleep interval, auto-detected or manually logged.
// Append-only; only QualityRating is attached after creation.
type SleepRecord struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	AutoDetected    bool      `json:"auto_detected"`
	QualityRating   int       `json:"quality_rating,omitempty"` // 1-5, 0 = unrated
}

// PuzzleExtension is one tier of the daily bonus-minutes unlock chain.
type PuzzleExtension struct {
	Tier            int  `json:"tier"` // 1..3
	PuzzlesRequired int  `json:"puzzles_required"`
	MinutesEarned   int  `json:"minutes_earned"`
	Completed       bool `json:"completed"`
	PuzzlesSolved   int  `json:"puzzles_solved"`
}

// UserSettings is the singleton settings document, blue-light config
// included.
type UserSettings struct {
	OnboardingComplete   bool   `json:"onboarding_complete"`
	WarningMessage       string `json:"warning_message"`
	DailyGoalMinutes     int    `json:"daily_goal_minutes"`
	FocusReminderEnabled bool   `json:"focus_reminder_enabled"`
	SleepTracking        bool   `json:"sleep_tracking"`
	Bedtime              string `json:"bedtime"`   // HH:MM
	WakeTime             string `json:"wake_time"` // HH:MM
	BlueLightEnabled     bool   `json:"blue_light_enabled"`
	BlueLightIntensity   int    `json:"blue_light_intensity"` // 0-100
	BlueLightAuto        bool   `json:"blue_light_auto"`
}

// dated wraps a per-day payload with its calendar tag. A read whose tag
// does not match today yields the default value, never the stale payload.
type dated[T any] struct {
	Date    string `json:"date"`
	Payload T      `json:"payload"`
}
