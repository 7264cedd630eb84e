package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/zenscreen/internal/export"
	"github.com/sadopc/zenscreen/internal/wellbeing"
)

// App is the root Bubble Tea model.
type App struct {
	ctl    *wellbeing.Controller
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	dashboard dashboardModel
	blocker   blockerModel
	focus     focusModel
	sleep     sleepModel
	puzzles   puzzlesModel
	settings  settingsModel

	help   help.Model
	status string
}

func NewApp(ctl *wellbeing.Controller) App {
	h := help.New()
	h.ShowAll = false

	return App{
		ctl:        ctl,
		activeView: viewDashboard,
		dashboard:  newDashboardModel(ctl),
		blocker:    newBlockerModel(ctl),
		focus:      newFocusModel(ctl),
		sleep:      newSleepModel(ctl),
		puzzles:    newPuzzlesModel(ctl),
		settings:   newSettingsModel(ctl),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.dashboard.loadData(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.blocker.setSize(a.width, contentHeight)
		a.focus.setSize(a.width, contentHeight)
		a.sleep.setSize(a.width, contentHeight)
		a.puzzles.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.FocusMsg:
		// Terminal regained focus: rollover check, maybe a detected
		// sleep session.
		if record, err := a.ctl.OnForeground(); err == nil && record != nil {
			a.status = fmt.Sprintf("Sleep detected: %s", formatMinutes(record.DurationMinutes))
			return a, a.sleep.refresh()
		}
		return a, a.refreshCurrentView()

	case tea.BlurMsg:
		a.ctl.OnBackground()
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, a.dashboard.loadData()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewBlocker
			return a, a.blocker.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewFocus
			return a, a.focus.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewSleep
			return a, a.sleep.refresh()
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewPuzzles
			return a, a.puzzles.refresh()
		case key.Matches(msg, keys.Tab6):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 6
			return a, a.refreshCurrentView()
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
		// Completion boundary for the focus countdown.
		if session, err := a.ctl.Tick(); err == nil && session != nil {
			a.status = "Focus session complete"
			cmds = append(cmds, a.focus.refresh())
		}
		var cmd tea.Cmd
		a.focus, cmd = a.focus.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case statusMsg:
		a.status = msg.text
		return a, nil

	case focusStartedMsg:
		a.status = "Focus session started"
		return a, nil

	case focusEndedMsg:
		if msg.session.Completed {
			a.status = "Focus session complete"
		} else {
			a.status = "Focus session aborted"
		}
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewBlocker:
		a.blocker, cmd = a.blocker.update(msg)
	case viewFocus:
		a.focus, cmd = a.focus.update(msg)
	case viewSleep:
		a.sleep, cmd = a.sleep.update(msg)
	case viewPuzzles:
		a.puzzles, cmd = a.puzzles.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewBlocker:
		return a.blocker.formActive
	case viewFocus:
		return a.focus.formActive
	case viewSleep:
		return a.sleep.formActive
	case viewSettings:
		return a.settings.formActive
	case viewPuzzles:
		return a.puzzles.answering
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDashboard:
		return a.dashboard.loadData()
	case viewBlocker:
		return a.blocker.refresh()
	case viewFocus:
		return a.focus.refresh()
	case viewSleep:
		return a.sleep.refresh()
	case viewPuzzles:
		return a.puzzles.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewBlocker:
		content = a.blocker.view()
	case viewFocus:
		content = a.focus.view()
	case viewSleep:
		content = a.sleep.view()
	case viewPuzzles:
		content = a.puzzles.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("zenscreen")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Active focus countdown in the footer.
	focusInfo := ""
	if a.ctl.ActiveFocus() != nil {
		focusInfo = successStyle.Render(" ● " + formatCountdown(a.ctl.FocusRemaining()))
	}

	// Blue-light indicator.
	nightInfo := ""
	if a.ctl.BlueLightActive() {
		nightInfo = nightStyle.Render(fmt.Sprintf(" ☾ %d%%", a.ctl.BlueLightIntensity()))
	}

	left := footerStyle.Render(helpView)
	right := focusInfo + nightInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		format := "csv"
		if a.exportCursor == 1 {
			format = "json"
		}
		return a, a.runExport(format)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) runExport(format string) tea.Cmd {
	return func() tea.Msg {
		apps, err := a.ctl.Apps()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
		}
		records, err := a.ctl.SleepRecords()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
		}

		home, _ := os.UserHomeDir()
		stamp := time.Now().Format("20060102-150405")

		if format == "json" {
			path := filepath.Join(home, fmt.Sprintf("zenscreen-%s.json", stamp))
			if err := export.ToJSON(apps, records, path); err != nil {
				return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
			}
			return exportDoneMsg{path: path}
		}

		usagePath := filepath.Join(home, fmt.Sprintf("zenscreen-usage-%s.csv", stamp))
		if err := export.UsageToCSV(apps, usagePath); err != nil {
			return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
		}
		sleepPath := filepath.Join(home, fmt.Sprintf("zenscreen-sleep-%s.csv", stamp))
		if err := export.SleepToCSV(records, sleepPath); err != nil {
			return statusMsg{text: fmt.Sprintf("Export failed: %v", err), isError: true}
		}
		return exportDoneMsg{path: usagePath}
	}
}
