// Package schedule evaluates clock-time windows that may cross midnight,
// and derives the blue-light filter state from the user's sleep schedule.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" to minutes since midnight (0-1439).
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse clock %q: want HH:MM", s)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, fmt.Errorf("parse clock %q: want HH:MM", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", s)
	}
	return h*60 + m, nil
}

// MinuteOfDay returns t's minutes since local midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Window is a [Start, End) clock window in minutes since midnight.
// Start > End means the window wraps midnight. Start == End is an empty
// window, never active.
type Window struct {
	Start int
	End   int
}

// ParseWindow builds a Window from two HH:MM bounds.
func ParseWindow(start, end string) (Window, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: s, End: e}, nil
}

// Contains reports whether the given minute of day falls in the window.
func (w Window) Contains(minute int) bool {
	if w.Start <= w.End {
		return minute >= w.Start && minute < w.End
	}
	// Wraps midnight.
	return minute >= w.Start || minute < w.End
}

// MinutesUntilBoundary returns the minutes from the given minute of day
// to the next boundary crossing: the end bound while the window is
// active, the start bound otherwise.
func (w Window) MinutesUntilBoundary(minute int) int {
	var target int
	if w.Contains(minute) {
		target = w.End
	} else {
		target = w.Start
	}
	d := target - minute
	if d <= 0 {
		d += minutesPerDay
	}
	return d
}
