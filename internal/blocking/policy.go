// Package blocking resolves whether an app is blocked, why, and how much
// time remains. All functions are pure; callers supply the context and
// persist any interstitial timestamps themselves.
package blocking

import (
	"fmt"
	"math"
	"time"

	"github.com/sadopc/zenscreen/internal/store"
)

// Remaining-minutes sentinels.
const (
	// RemainingBlocked marks a fully blocked app; time has no meaning.
	RemainingBlocked = -1
	// RemainingUnlimited marks an app with no effective limit.
	RemainingUnlimited = math.MaxInt32
)

// interstitialInterval throttles repeated blocking prompts for the same
// app.
const interstitialInterval = time.Minute

// Context is everything one blocking decision depends on.
type Context struct {
	Rules        []store.BlockRule
	FocusSession *store.FocusSession // nil when no session is active
	UsageToday   map[string]int      // app id -> minutes used
}

func (c Context) rule(appID string) *store.BlockRule {
	for i := range c.Rules {
		if c.Rules[i].AppID == appID {
			return &c.Rules[i]
		}
	}
	return nil
}

// IsBlocked resolves the blocking decision. Precedence: the focus target
// is always allowed, every other app is blocked while a focus session is
// active, otherwise the app's rule decides. The time_limit boundary is
// inclusive: usage equal to the limit blocks.
func IsBlocked(appID string, ctx Context) bool {
	if ctx.FocusSession != nil {
		return ctx.FocusSession.AppID != appID
	}

	rule := ctx.rule(appID)
	if rule == nil {
		return false
	}
	switch rule.Mode {
	case store.ModeFullBlock:
		return true
	case store.ModeTimeLimit:
		return ctx.UsageToday[appID] >= rule.DailyLimitMinutes
	default:
		return false
	}
}

// RemainingMinutes returns minutes left before the app is blocked.
// RemainingUnlimited when no limit applies, RemainingBlocked for a full
// block.
func RemainingMinutes(appID string, ctx Context) int {
	rule := ctx.rule(appID)
	if rule == nil {
		return RemainingUnlimited
	}
	switch rule.Mode {
	case store.ModeFullBlock:
		return RemainingBlocked
	case store.ModeTimeLimit:
		return max(0, rule.DailyLimitMinutes-ctx.UsageToday[appID])
	default:
		return RemainingUnlimited
	}
}

// BlockedReason returns the user-facing explanation for the current
// decision. It follows the same precedence as IsBlocked.
func BlockedReason(appID string, ctx Context) string {
	if ctx.FocusSession != nil {
		name := ctx.FocusSession.AppName
		if name == "" {
			name = "the focus app"
		}
		return fmt.Sprintf("Focus mode active. Only %s is allowed.", name)
	}

	rule := ctx.rule(appID)
	if rule == nil {
		return "App is not restricted"
	}
	switch rule.Mode {
	case store.ModeFullBlock:
		name := rule.AppName
		if name == "" {
			name = "This app"
		}
		return fmt.Sprintf("%s is blocked.", name)
	case store.ModeTimeLimit:
		used := ctx.UsageToday[appID]
		if used >= rule.DailyLimitMinutes {
			return fmt.Sprintf("Daily limit reached (%dmin used).", rule.DailyLimitMinutes)
		}
		return fmt.Sprintf("%dmin remaining today.", rule.DailyLimitMinutes-used)
	default:
		return "App is not restricted"
	}
}

// ShouldShowInterstitial reports whether a blocking prompt should appear
// for a launch attempt at now. A zero lastShown means never shown.
func ShouldShowInterstitial(appID string, ctx Context, lastShown, now time.Time) bool {
	if !IsBlocked(appID, ctx) {
		return false
	}
	return lastShown.IsZero() || now.Sub(lastShown) >= interstitialInterval
}
