package schedule

import "time"

// BlueLight is the schedule slice of the user settings consulted on
// every evaluation.
type BlueLight struct {
	Bedtime  string // HH:MM
	WakeTime string // HH:MM
	Enabled  bool
}

// Active reports whether the filter should be on at t: enabled and the
// clock inside the bedtime-to-wake window.
func Active(cfg BlueLight, t time.Time) bool {
	if !cfg.Enabled {
		return false
	}
	w, err := ParseWindow(cfg.Bedtime, cfg.WakeTime)
	if err != nil {
		return false
	}
	return w.Contains(MinuteOfDay(t))
}

// SuggestedIntensity returns a 0-100 tint strength for t. Zero outside
// the active window. Inside it the shape is window-relative: a linear
// ramp from 20 to 80 over the first three hours after bedtime, a hold at
// 80 through the night, and a decay to 30 over the last two hours before
// wake. Short windows scale the ramp and decay to fit.
func SuggestedIntensity(cfg BlueLight, t time.Time) int {
	if !Active(cfg, t) {
		return 0
	}
	w, err := ParseWindow(cfg.Bedtime, cfg.WakeTime)
	if err != nil {
		return 0
	}

	length := w.Start - w.End
	if length >= 0 {
		length = minutesPerDay - length
	} else {
		length = -length
	}

	into := MinuteOfDay(t) - w.Start
	if into < 0 {
		into += minutesPerDay
	}

	ramp := 180
	decay := 120
	if ramp+decay > length {
		ramp = length / 2
		decay = length - ramp
	}

	switch {
	case into < ramp:
		return 20 + (80-20)*into/ramp
	case into >= length-decay:
		left := length - into
		return 30 + (80-30)*left/decay
	default:
		return 80
	}
}
