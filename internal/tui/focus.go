package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/zenscreen/internal/store"
	"github.com/sadopc/zenscreen/internal/wellbeing"
)

type focusModel struct {
	ctl    *wellbeing.Controller
	width  int
	height int

	apps    []store.AppRecord
	history []store.FocusSession

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formApp       *string
	formDuration  *string
	formGrayscale *bool
}

func newFocusModel(ctl *wellbeing.Controller) focusModel {
	app, duration := "", "25"
	grayscale := true
	return focusModel{
		ctl:           ctl,
		formApp:       &app,
		formDuration:  &duration,
		formGrayscale: &grayscale,
	}
}

func (f *focusModel) setSize(w, h int) {
	f.width = w
	f.height = h
}

type focusDataMsg struct {
	apps    []store.AppRecord
	history []store.FocusSession
}

func (f focusModel) refresh() tea.Cmd {
	return func() tea.Msg {
		apps, _ := f.ctl.Apps()
		history, _ := f.ctl.FocusHistory()
		return focusDataMsg{apps: apps, history: history}
	}
}

func (f focusModel) update(msg tea.Msg) (focusModel, tea.Cmd) {
	if f.formActive && f.form != nil {
		return f.updateForm(msg)
	}

	switch msg := msg.(type) {
	case focusDataMsg:
		f.apps = msg.apps
		f.history = msg.history
		return f, nil

	case tickMsg:
		// Re-render only; the root model drives the completion check.
		return f, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			if f.ctl.ActiveFocus() == nil {
				return f.showForm()
			}
		case key.Matches(msg, keys.Stop):
			if f.ctl.ActiveFocus() != nil {
				session, err := f.ctl.StopFocus()
				if err != nil {
					return f, errStatus(err)
				}
				return f, tea.Batch(f.refresh(), func() tea.Msg {
					return focusEndedMsg{session: session}
				})
			}
		}
	}
	return f, nil
}

func (f focusModel) showForm() (focusModel, tea.Cmd) {
	if len(f.apps) == 0 {
		return f, nil
	}

	var options []huh.Option[string]
	for _, a := range f.apps {
		options = append(options, huh.NewOption(a.Name, a.ID))
	}
	*f.formApp = f.apps[0].ID
	*f.formDuration = "25"

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Focus on").Options(options...).Value(f.formApp),
			huh.NewInput().Title("Duration (min)").Value(f.formDuration),
			huh.NewConfirm().Title("Grayscale other apps?").Value(f.formGrayscale),
		),
	).WithShowHelp(true).WithShowErrors(true)

	f.formActive = true
	return f, f.form.Init()
}

func (f focusModel) updateForm(msg tea.Msg) (focusModel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Back) {
		f.formActive = false
		f.form = nil
		return f, nil
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	if f.form.State == huh.StateCompleted {
		f.formActive = false

		duration, err := strconv.Atoi(strings.TrimSpace(*f.formDuration))
		if err != nil || duration <= 0 {
			return f, func() tea.Msg {
				return statusMsg{text: "Duration must be a positive number of minutes", isError: true}
			}
		}

		appID := *f.formApp
		var appName string
		var blocked []string
		for _, a := range f.apps {
			if a.ID == appID {
				appName = a.Name
			} else {
				blocked = append(blocked, a.ID)
			}
		}

		session, err := f.ctl.StartFocus(appID, appName, duration, blocked, *f.formGrayscale)
		if err != nil {
			return f, errStatus(err)
		}
		return f, tea.Batch(f.refresh(), func() tea.Msg {
			return focusStartedMsg{session: session}
		})
	}
	return f, cmd
}

func (f focusModel) view() string {
	if f.formActive && f.form != nil {
		return f.form.View()
	}

	w := f.width - 4

	var panel string
	if session := f.ctl.ActiveFocus(); session != nil {
		countdown := countdownStyle.Render(formatCountdown(f.ctl.FocusRemaining()))
		target := fmt.Sprintf("Focusing on %s for %s", session.AppName, formatMinutes(session.DurationMinutes))
		extras := mutedStyle.Render(fmt.Sprintf("%d apps blocked", len(session.BlockedApps)))
		if session.Grayscale {
			extras = mutedStyle.Render(fmt.Sprintf("%d apps blocked · grayscale on", len(session.BlockedApps)))
		}
		panel = activePanelStyle.Width(min(w, 60)).Render(
			lipgloss.JoinVertical(lipgloss.Center, target, "", countdown, "", extras, "",
				mutedStyle.Render("x: stop early")))
	} else {
		panel = panelStyle.Width(min(w, 60)).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				titleStyle.Render("No focus session"),
				"",
				mutedStyle.Render("s: start a session")))
	}

	// Recent sessions, newest last in storage.
	var rows []string
	rows = append(rows, titleStyle.Render("History"))
	start := max(0, len(f.history)-5)
	for _, s := range f.history[start:] {
		status := warningStyle.Render("aborted")
		if s.Completed {
			status = successStyle.Render("completed")
		} else if s.EndTime == nil {
			status = highlightStyle.Render("active")
		}
		rows = append(rows, fmt.Sprintf("%s  %-12s %s",
			s.StartTime.Local().Format("Jan 02 15:04"), s.AppName, status))
	}
	if len(f.history) == 0 {
		rows = append(rows, mutedStyle.Render("no sessions yet"))
	}

	history := panelStyle.Width(min(w, 60)).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, panel, "", history)
}
