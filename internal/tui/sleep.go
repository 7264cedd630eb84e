package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/zenscreen/internal/schedule"
	"github.com/sadopc/zenscreen/internal/sleepdetect"
	"github.com/sadopc/zenscreen/internal/store"
	"github.com/sadopc/zenscreen/internal/wellbeing"
)

type sleepModel struct {
	ctl    *wellbeing.Controller
	width  int
	height int

	records []store.SleepRecord
	cursor  int
	chart   barchart.Model

	formActive bool
	form       *huh.Form
	rating     bool // form is the rating form, not the manual-log form

	// Form values as pointers (survive value copies)
	formBedtime *string
	formWake    *string
	formRating  *string
}

func newSleepModel(ctl *wellbeing.Controller) sleepModel {
	bedtime, wake, rating := "23:00", "07:00", "3"
	return sleepModel{
		ctl:         ctl,
		chart:       barchart.New(40, 8),
		formBedtime: &bedtime,
		formWake:    &wake,
		formRating:  &rating,
	}
}

func (s *sleepModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type sleepDataMsg struct {
	records []store.SleepRecord
}

func (s sleepModel) refresh() tea.Cmd {
	return func() tea.Msg {
		records, _ := s.ctl.SleepRecords()
		return sleepDataMsg{records: records}
	}
}

func (s sleepModel) update(msg tea.Msg) (sleepModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case sleepDataMsg:
		s.records = msg.records
		if s.cursor >= len(s.records) {
			s.cursor = max(0, len(s.records)-1)
		}
		s.buildChart()
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, keys.Down):
			if s.cursor < len(s.records)-1 {
				s.cursor++
			}
		case key.Matches(msg, keys.New):
			return s.showLogForm()
		case key.Matches(msg, keys.Rate):
			if len(s.records) > 0 {
				return s.showRatingForm()
			}
		}
	}
	return s, nil
}

func (s sleepModel) showLogForm() (sleepModel, tea.Cmd) {
	s.rating = false
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Fell asleep (HH:MM)").Value(s.formBedtime),
			huh.NewInput().Title("Woke up (HH:MM)").Value(s.formWake),
		).Title("Log sleep"),
	).WithShowHelp(true).WithShowErrors(true)
	s.formActive = true
	return s, s.form.Init()
}

func (s sleepModel) showRatingForm() (sleepModel, tea.Cmd) {
	s.rating = true
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Sleep quality").
				Options(
					huh.NewOption("1 - terrible", "1"),
					huh.NewOption("2 - poor", "2"),
					huh.NewOption("3 - okay", "3"),
					huh.NewOption("4 - good", "4"),
					huh.NewOption("5 - great", "5"),
				).Value(s.formRating),
		),
	).WithShowHelp(true).WithShowErrors(true)
	s.formActive = true
	return s, s.form.Init()
}

func (s sleepModel) updateForm(msg tea.Msg) (sleepModel, tea.Cmd) {
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
		if s.rating {
			rating, _ := strconv.Atoi(*s.formRating)
			record := s.records[s.cursor]
			if err := s.ctl.RateSleep(record.ID, rating); err != nil {
				return s, errStatus(err)
			}
			return s, s.refresh()
		}
		return s.submitManualLog()
	}
	return s, cmd
}

// submitManualLog interprets the two clock times against yesterday
// evening and this morning: a bedtime later than the wake time is taken
// to be before midnight.
func (s sleepModel) submitManualLog() (sleepModel, tea.Cmd) {
	bed, err1 := schedule.ParseClock(strings.TrimSpace(*s.formBedtime))
	wake, err2 := schedule.ParseClock(strings.TrimSpace(*s.formWake))
	if err1 != nil || err2 != nil {
		return s, func() tea.Msg {
			return statusMsg{text: "Times must be HH:MM", isError: true}
		}
	}

	now := time.Now()
	morning := time.Date(now.Year(), now.Month(), now.Day(), wake/60, wake%60, 0, 0, now.Location())
	night := time.Date(now.Year(), now.Month(), now.Day(), bed/60, bed%60, 0, 0, now.Location())
	if bed > wake {
		night = night.AddDate(0, 0, -1)
	}

	if _, err := s.ctl.LogManualSleep(night, morning); err != nil {
		return s, errStatus(err)
	}
	return s, s.refresh()
}

func (s *sleepModel) buildChart() {
	chartWidth := s.width/2 - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	s.chart = barchart.New(chartWidth, 8)

	start := max(0, len(s.records)-7)
	var bars []barchart.BarData
	for _, r := range s.records[start:] {
		style := successStyle
		if r.DurationMinutes < 6*60 {
			style = warningStyle
		}
		bars = append(bars, barchart.BarData{
			Label: r.EndTime.Local().Format("Mon"),
			Values: []barchart.BarValue{{
				Name:  "hours",
				Value: float64(r.DurationMinutes) / 60.0,
				Style: style,
			}},
		})
	}
	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s sleepModel) view() string {
	if s.formActive && s.form != nil {
		return s.form.View()
	}

	w := s.width - 4

	var rows []string
	rows = append(rows, titleStyle.Render("Sleep"))
	rows = append(rows, "")

	if len(s.records) == 0 {
		rows = append(rows, mutedStyle.Render("no records yet — n: log sleep manually"))
	}

	start := max(0, len(s.records)-10)
	for i := start; i < len(s.records); i++ {
		r := s.records[i]
		cursor := "  "
		style := normalItemStyle
		if i == s.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		source := "manual"
		if r.AutoDetected {
			source = "auto"
		}
		rating := mutedStyle.Render("unrated")
		if r.QualityRating > 0 {
			rating = highlightStyle.Render(strings.Repeat("★", r.QualityRating))
		}

		rows = append(rows, fmt.Sprintf("%s%s  %s (%s, %s)  %s",
			cursor,
			style.Render(r.EndTime.Local().Format("Jan 02")),
			formatMinutes(r.DurationMinutes),
			sleepdetect.Quality(r.DurationMinutes),
			source,
			rating))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("n: log manually  r: rate selected"))

	list := panelStyle.Width(min(w/2, 56)).Render(strings.Join(rows, "\n"))
	chart := panelStyle.Render(s.chart.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", chart)
}
