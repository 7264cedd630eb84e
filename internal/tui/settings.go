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

type settingsModel struct {
	ctl    *wellbeing.Controller
	width  int
	height int

	settings   store.UserSettings
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	dailyGoal     *string
	warning       *string
	bedtime       *string
	wakeTime      *string
	sleepTracking *bool
	blueEnabled   *bool
	blueAuto      *bool
	blueIntensity *string
}

func newSettingsModel(ctl *wellbeing.Controller) settingsModel {
	dg, warn, bed, wake, intensity := "", "", "", "", ""
	st, be, ba := false, false, false
	return settingsModel{
		ctl:           ctl,
		dailyGoal:     &dg,
		warning:       &warn,
		bedtime:       &bed,
		wakeTime:      &wake,
		sleepTracking: &st,
		blueEnabled:   &be,
		blueAuto:      &ba,
		blueIntensity: &intensity,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings store.UserSettings
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.ctl.Settings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.dailyGoal = strconv.Itoa(s.settings.DailyGoalMinutes)
	*s.warning = s.settings.WarningMessage
	*s.bedtime = s.settings.Bedtime
	*s.wakeTime = s.settings.WakeTime
	*s.sleepTracking = s.settings.SleepTracking
	*s.blueEnabled = s.settings.BlueLightEnabled
	*s.blueAuto = s.settings.BlueLightAuto
	*s.blueIntensity = strconv.Itoa(s.settings.BlueLightIntensity)

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Daily goal (min)").Value(s.dailyGoal),
			huh.NewInput().Title("Limit warning message").Value(s.warning),
			huh.NewConfirm().Title("Sleep tracking").Value(s.sleepTracking),
		).Title("General"),
		huh.NewGroup(
			huh.NewInput().Title("Bedtime (HH:MM)").Value(s.bedtime),
			huh.NewInput().Title("Wake time (HH:MM)").Value(s.wakeTime),
			huh.NewConfirm().Title("Blue-light filter").Value(s.blueEnabled),
			huh.NewConfirm().Title("Auto-schedule intensity").Value(s.blueAuto),
			huh.NewInput().Title("Fixed intensity (0-100)").Value(s.blueIntensity),
		).Title("Night"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Back) {
		s.formActive = false
		s.form = nil
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		s.form = m
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false

		updated := s.settings
		if goal, err := strconv.Atoi(strings.TrimSpace(*s.dailyGoal)); err == nil {
			updated.DailyGoalMinutes = goal
		}
		if intensity, err := strconv.Atoi(strings.TrimSpace(*s.blueIntensity)); err == nil {
			updated.BlueLightIntensity = intensity
		}
		updated.WarningMessage = *s.warning
		updated.Bedtime = strings.TrimSpace(*s.bedtime)
		updated.WakeTime = strings.TrimSpace(*s.wakeTime)
		updated.SleepTracking = *s.sleepTracking
		updated.BlueLightEnabled = *s.blueEnabled
		updated.BlueLightAuto = *s.blueAuto

		if err := s.ctl.UpdateSettings(updated); err != nil {
			return s, errStatus(err)
		}
		return s, s.refresh()
	}
	return s, cmd
}

func (s settingsModel) view() string {
	if s.formActive && s.form != nil {
		return s.form.View()
	}

	w := s.width - 4
	onOff := func(b bool) string {
		if b {
			return successStyle.Render("on")
		}
		return mutedStyle.Render("off")
	}

	rows := []string{
		titleStyle.Render("Settings"),
		"",
		fmt.Sprintf("Daily goal          %s", formatMinutes(s.settings.DailyGoalMinutes)),
		fmt.Sprintf("Sleep tracking      %s", onOff(s.settings.SleepTracking)),
		fmt.Sprintf("Bedtime / wake      %s – %s", s.settings.Bedtime, s.settings.WakeTime),
		fmt.Sprintf("Blue-light filter   %s", onOff(s.settings.BlueLightEnabled)),
		fmt.Sprintf("Auto intensity      %s", onOff(s.settings.BlueLightAuto)),
		fmt.Sprintf("Fixed intensity     %d%%", s.settings.BlueLightIntensity),
		"",
		mutedStyle.Render("enter: edit"),
	}

	return panelStyle.Width(min(w, 56)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
