package tui

import (
	"fmt"
	"time"

	"github.com/sadopc/zenscreen/internal/store"
	"github.com/sadopc/zenscreen/internal/wellbeing"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewBlocker
	viewFocus
	viewSleep
	viewPuzzles
	viewSettings
)

var viewNames = []string{"Dashboard", "Blocker", "Focus", "Sleep", "Puzzles", "Settings"}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type focusStartedMsg struct {
	session *store.FocusSession
}

type focusEndedMsg struct {
	session *store.FocusSession
}

type sleepDetectedMsg struct {
	record *store.SleepRecord
}

type launchResultMsg struct {
	appID    string
	decision wellbeing.LaunchDecision
}

type exportDoneMsg struct {
	path string
}

type formDoneMsg struct{}
type formCancelMsg struct{}

// --- Helpers ---

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
