package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/zenscreen/internal/store"
	"github.com/sadopc/zenscreen/internal/wellbeing"
)

var categoryColors = map[string]lipgloss.Color{
	"Social":        lipgloss.Color("#E1306C"),
	"Entertainment": lipgloss.Color("#FF0000"),
	"Communication": lipgloss.Color("#25D366"),
	"Productivity":  lipgloss.Color("#4285F4"),
}

type dashboardModel struct {
	ctl    *wellbeing.Controller
	width  int
	height int

	apps    []store.AppRecord
	usage   map[string]int
	summary wellbeing.Summary

	chart barchart.Model
}

func newDashboardModel(ctl *wellbeing.Controller) dashboardModel {
	return dashboardModel{
		ctl:   ctl,
		chart: barchart.New(60, 10),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	apps    []store.AppRecord
	usage   map[string]int
	summary wellbeing.Summary
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		apps, _ := d.ctl.Apps()
		usage, _ := d.ctl.UsageToday()
		summary, _ := d.ctl.Summarize()
		return dashboardDataMsg{apps: apps, usage: usage, summary: summary}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.apps = msg.apps
		d.usage = msg.usage
		d.summary = msg.summary
		d.buildChart()
		return d, nil
	}
	return d, nil
}

func (d *dashboardModel) buildChart() {
	chartWidth := d.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if d.height > 30 {
		chartHeight = 14
	}

	d.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, a := range d.apps {
		color, ok := categoryColors[a.Category]
		if !ok {
			color = colorSubtle
		}
		bars = append(bars, barchart.BarData{
			Label: a.Name,
			Values: []barchart.BarValue{{
				Name:  a.Name,
				Value: float64(d.usage[a.ID]),
				Style: lipgloss.NewStyle().Foreground(color),
			}},
		})
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	w := d.width - 4

	s := d.summary
	goalLine := fmt.Sprintf("Screen time today: %s  /  goal %s",
		formatMinutes(s.TotalScreenTime), formatMinutes(s.DailyGoalMinutes))
	if s.BonusMinutes > 0 {
		goalLine += fmt.Sprintf(" (+%dm bonus)", s.BonusMinutes)
	}
	var goalStatus string
	if s.OverGoalMinutes > 0 {
		goalStatus = errorStyle.Render(fmt.Sprintf("  %s over goal", formatMinutes(s.OverGoalMinutes)))
	} else {
		goalStatus = successStyle.Render("  under goal")
	}

	statsLine := mutedStyle.Render(fmt.Sprintf("%d opens · %d notifications", s.TotalOpens, s.TotalNotifications))

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Today"),
		goalLine+goalStatus,
		statsLine,
	)

	// Per-app table for limits at a glance.
	var rows []string
	for _, a := range d.apps {
		used := formatMinutes(d.usage[a.ID])
		limit := "—"
		style := normalItemStyle
		if a.DailyLimit > 0 {
			limit = formatMinutes(a.DailyLimit)
			if d.usage[a.ID] >= a.DailyLimit {
				style = errorStyle
			} else if d.usage[a.ID] >= a.DailyLimit*3/4 {
				style = warningStyle
			}
		}
		rows = append(rows, style.Render(fmt.Sprintf("%-14s %8s / %-8s", a.Name, used, limit)))
	}

	table := panelStyle.Width(min(w, 44)).Render(strings.Join(rows, "\n"))
	chart := panelStyle.Render(d.chart.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, table, " ", chart)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}
