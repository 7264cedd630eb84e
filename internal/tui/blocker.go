package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/zenscreen/internal/blocking"
	"github.com/sadopc/zenscreen/internal/store"
	"github.com/sadopc/zenscreen/internal/wellbeing"
)

type blockerModel struct {
	ctl    *wellbeing.Controller
	width  int
	height int

	apps   []store.AppRecord
	rules  map[string]store.BlockRule
	usage  map[string]int
	cursor int

	// Last simulated launch result, shown as an interstitial panel.
	lastLaunch *launchResultMsg

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	formMode  *string
	formLimit *string
}

func newBlockerModel(ctl *wellbeing.Controller) blockerModel {
	mode, limit := "", ""
	return blockerModel{
		ctl:       ctl,
		formMode:  &mode,
		formLimit: &limit,
	}
}

func (b *blockerModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

type blockerDataMsg struct {
	apps  []store.AppRecord
	rules []store.BlockRule
	usage map[string]int
}

func (b blockerModel) refresh() tea.Cmd {
	return func() tea.Msg {
		apps, _ := b.ctl.Apps()
		rules, _ := b.ctl.BlockRules()
		usage, _ := b.ctl.UsageToday()
		return blockerDataMsg{apps: apps, rules: rules, usage: usage}
	}
}

func (b blockerModel) update(msg tea.Msg) (blockerModel, tea.Cmd) {
	if b.formActive && b.form != nil {
		return b.updateForm(msg)
	}

	switch msg := msg.(type) {
	case blockerDataMsg:
		b.apps = msg.apps
		b.usage = msg.usage
		b.rules = make(map[string]store.BlockRule, len(msg.rules))
		for _, r := range msg.rules {
			b.rules[r.AppID] = r
		}
		return b, nil

	case launchResultMsg:
		b.lastLaunch = &msg
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if b.cursor > 0 {
				b.cursor--
			}
		case key.Matches(msg, keys.Down):
			if b.cursor < len(b.apps)-1 {
				b.cursor++
			}
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			if len(b.apps) > 0 {
				return b.showForm()
			}
		case key.Matches(msg, keys.Delete):
			if len(b.apps) > 0 {
				app := b.apps[b.cursor]
				if err := b.ctl.RemoveBlockRule(app.ID); err != nil {
					return b, errStatus(err)
				}
				return b, b.refresh()
			}
		case key.Matches(msg, keys.Launch):
			if len(b.apps) > 0 {
				return b, b.simulateLaunch(b.apps[b.cursor].ID)
			}
		case key.Matches(msg, keys.Back):
			b.lastLaunch = nil
		}
	}
	return b, nil
}

// simulateLaunch stands in for the host's "app launched" event.
func (b blockerModel) simulateLaunch(appID string) tea.Cmd {
	return func() tea.Msg {
		decision, err := b.ctl.OnAppLaunch(appID)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return launchResultMsg{appID: appID, decision: decision}
	}
}

func (b blockerModel) showForm() (blockerModel, tea.Cmd) {
	app := b.apps[b.cursor]

	*b.formMode = string(store.ModeTimeLimit)
	*b.formLimit = "30"
	if rule, ok := b.rules[app.ID]; ok {
		*b.formMode = string(rule.Mode)
		if rule.DailyLimitMinutes > 0 {
			*b.formLimit = strconv.Itoa(rule.DailyLimitMinutes)
		}
	}

	b.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title(fmt.Sprintf("Rule for %s", app.Name)).
				Options(
					huh.NewOption("Full block", string(store.ModeFullBlock)),
					huh.NewOption("Time limit", string(store.ModeTimeLimit)),
					huh.NewOption("Unrestricted", string(store.ModeUnrestricted)),
				).Value(b.formMode),
			huh.NewInput().Title("Daily limit (min, time limit only)").Value(b.formLimit),
		),
	).WithShowHelp(true).WithShowErrors(true)

	b.formActive = true
	return b, b.form.Init()
}

func (b blockerModel) updateForm(msg tea.Msg) (blockerModel, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Back) {
		b.formActive = false
		b.form = nil
		return b, nil
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		b.formActive = false
		app := b.apps[b.cursor]
		limit, _ := strconv.Atoi(strings.TrimSpace(*b.formLimit))
		rule := store.BlockRule{
			AppID:             app.ID,
			AppName:           app.Name,
			Mode:              store.BlockMode(*b.formMode),
			DailyLimitMinutes: limit,
		}
		if err := b.ctl.SetBlockRule(rule); err != nil {
			return b, errStatus(err)
		}
		return b, b.refresh()
	}
	return b, cmd
}

func (b blockerModel) view() string {
	if b.formActive && b.form != nil {
		return b.form.View()
	}

	w := b.width - 4

	var rows []string
	rows = append(rows, titleStyle.Render("App Blocker"))
	rows = append(rows, "")

	ctx, _ := b.ctl.BlockingContext()
	for i, app := range b.apps {
		cursor := "  "
		style := normalItemStyle
		if i == b.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		ruleText := mutedStyle.Render("no rule")
		if rule, ok := b.rules[app.ID]; ok {
			switch rule.Mode {
			case store.ModeFullBlock:
				ruleText = errorStyle.Render("full block")
			case store.ModeTimeLimit:
				ruleText = warningStyle.Render(fmt.Sprintf("limit %s", formatMinutes(rule.DailyLimitMinutes)))
			case store.ModeUnrestricted:
				ruleText = successStyle.Render("unrestricted")
			}
		}

		state := ""
		if blocking.IsBlocked(app.ID, ctx) {
			state = errorStyle.Render("  ⛔ blocked")
		}

		rows = append(rows, fmt.Sprintf("%s%s  %s%s",
			cursor, style.Render(fmt.Sprintf("%-14s", app.Name)), ruleText, state))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("enter: edit rule  d: remove  o: try opening"))

	list := strings.Join(rows, "\n")

	if b.lastLaunch == nil {
		return list
	}
	return lipgloss.JoinVertical(lipgloss.Left, list, "", b.renderInterstitial(w))
}

func (b blockerModel) renderInterstitial(w int) string {
	d := b.lastLaunch.decision

	if !d.Blocked {
		remaining := "no limit"
		if d.RemainingMinutes != blocking.RemainingUnlimited {
			remaining = formatMinutes(d.RemainingMinutes) + " left"
		}
		return panelStyle.Width(min(w, 60)).Render(
			successStyle.Render(fmt.Sprintf("%s opened", b.lastLaunch.appID)) + "\n" +
				mutedStyle.Render(remaining))
	}

	if !d.ShowInterstitial {
		// Throttled: blocked, but no modal within the same minute.
		return panelStyle.Width(min(w, 60)).Render(
			mutedStyle.Render("blocked (prompt throttled)"))
	}

	return activePanelStyle.Width(min(w, 60)).Render(
		errorStyle.Render("⛔ "+d.Reason) + "\n" +
			mutedStyle.Render("esc: dismiss"))
}

func errStatus(err error) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
	}
}
