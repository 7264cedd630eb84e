package schedule

import (
	"testing"
	"time"
)

// ============================================================
// ParseClock
// ============================================================

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"07:00", 420},
		{"22:00", 1320},
		{"23:59", 1439},
		{"9:05", 545},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, in := range []string{"", "22", "24:00", "12:60", "ab:cd", "-1:00"} {
		if _, err := ParseClock(in); err == nil {
			t.Errorf("ParseClock(%q) should fail", in)
		}
	}
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2025, 6, 9, 23, 30, 45, 0, time.UTC)
	if got := MinuteOfDay(at); got != 23*60+30 {
		t.Fatalf("MinuteOfDay = %d", got)
	}
}

// ============================================================
// Window containment
// ============================================================

func TestWindowContainsSameDay(t *testing.T) {
	w := Window{Start: 9 * 60, End: 17 * 60} // 09:00-17:00
	tests := []struct {
		minute int
		want   bool
	}{
		{9 * 60, true},      // start inclusive
		{12 * 60, true},     // middle
		{17*60 - 1, true},   // last minute
		{17 * 60, false},    // end exclusive
		{8 * 60, false},     // before
		{20 * 60, false},    // after
	}
	for _, tt := range tests {
		if got := w.Contains(tt.minute); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.minute, got, tt.want)
		}
	}
}

func TestWindowContainsWrapsMidnight(t *testing.T) {
	w := Window{Start: 22 * 60, End: 7 * 60} // 22:00-07:00
	tests := []struct {
		minute int
		want   bool
	}{
		{22 * 60, true},    // start inclusive
		{23 * 60, true},    // before midnight
		{0, true},          // midnight
		{3 * 60, true},     // after midnight
		{7*60 - 1, true},   // last minute
		{7 * 60, false},    // end exclusive
		{12 * 60, false},   // midday
		{21 * 60, false},   // just before start
	}
	for _, tt := range tests {
		if got := w.Contains(tt.minute); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.minute, got, tt.want)
		}
	}
}

func TestWindowEmptyNeverActive(t *testing.T) {
	w := Window{Start: 10 * 60, End: 10 * 60}
	for _, minute := range []int{0, 10 * 60, 10*60 + 1, 23 * 60} {
		if w.Contains(minute) {
			t.Fatalf("empty window should never contain %d", minute)
		}
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("22:00", "07:00")
	if err != nil {
		t.Fatal(err)
	}
	if w.Start != 1320 || w.End != 420 {
		t.Fatalf("unexpected window: %+v", w)
	}
	if _, err := ParseWindow("bad", "07:00"); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := ParseWindow("22:00", "bad"); err == nil {
		t.Fatal("expected parse error")
	}
}

// ============================================================
// Boundary distance
// ============================================================

func TestMinutesUntilBoundary(t *testing.T) {
	w := Window{Start: 22 * 60, End: 7 * 60}
	tests := []struct {
		minute int
		want   int
	}{
		{23 * 60, 8 * 60},  // active, 8h to 07:00
		{6 * 60, 60},       // active, 1h to 07:00
		{12 * 60, 10 * 60}, // inactive, 10h to 22:00
		{7 * 60, 15 * 60},  // exactly at end, 15h to 22:00
	}
	for _, tt := range tests {
		if got := w.MinutesUntilBoundary(tt.minute); got != tt.want {
			t.Errorf("MinutesUntilBoundary(%d) = %d, want %d", tt.minute, got, tt.want)
		}
	}
}
