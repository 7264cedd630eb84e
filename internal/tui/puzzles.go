package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/zenscreen/internal/puzzle"
	"github.com/sadopc/zenscreen/internal/store"
	"github.com/sadopc/zenscreen/internal/wellbeing"
)

type puzzlesModel struct {
	ctl    *wellbeing.Controller
	width  int
	height int

	tiers  []store.PuzzleExtension
	bonus  int
	cursor int

	// Quiz state while answering a tier's puzzles.
	answering    bool
	quizTier     int
	quiz         []puzzle.Puzzle
	quizIndex    int
	optionCursor int
	feedback     string
}

func newPuzzlesModel(ctl *wellbeing.Controller) puzzlesModel {
	return puzzlesModel{ctl: ctl}
}

func (p *puzzlesModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type puzzlesDataMsg struct {
	tiers []store.PuzzleExtension
	bonus int
}

func (p puzzlesModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tiers, _ := p.ctl.PuzzleTiers()
		bonus, _ := p.ctl.DailyBonus()
		return puzzlesDataMsg{tiers: tiers, bonus: bonus}
	}
}

func (p puzzlesModel) update(msg tea.Msg) (puzzlesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case puzzlesDataMsg:
		p.tiers = msg.tiers
		p.bonus = msg.bonus
		return p, nil

	case tea.KeyMsg:
		if p.answering {
			return p.updateQuiz(msg)
		}
		switch {
		case key.Matches(msg, keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, keys.Down):
			if p.cursor < len(p.tiers)-1 {
				p.cursor++
			}
		case key.Matches(msg, keys.Enter):
			if p.cursor < len(p.tiers) {
				return p.startQuiz(p.tiers[p.cursor])
			}
		}
	}
	return p, nil
}

func (p puzzlesModel) startQuiz(tier store.PuzzleExtension) (puzzlesModel, tea.Cmd) {
	if tier.Completed || !puzzle.CanAttempt(p.tiers, tier.Tier) {
		return p, nil
	}
	quiz, err := p.ctl.PuzzlesForTier(tier.Tier)
	if err != nil {
		return p, errStatus(err)
	}
	if len(quiz) == 0 {
		return p, func() tea.Msg {
			return statusMsg{text: "No puzzles left today", isError: true}
		}
	}
	p.answering = true
	p.quizTier = tier.Tier
	p.quiz = quiz
	p.quizIndex = 0
	p.optionCursor = 0
	p.feedback = ""
	return p, nil
}

func (p puzzlesModel) updateQuiz(msg tea.KeyMsg) (puzzlesModel, tea.Cmd) {
	current := p.quiz[p.quizIndex]

	switch {
	case key.Matches(msg, keys.Back):
		p.answering = false
		return p, p.refresh()
	case key.Matches(msg, keys.Up):
		if p.optionCursor > 0 {
			p.optionCursor--
		}
	case key.Matches(msg, keys.Down):
		if p.optionCursor < len(current.Options)-1 {
			p.optionCursor++
		}
	case key.Matches(msg, keys.Enter):
		correct, awarded, err := p.ctl.SubmitAnswer(p.quizTier, current.ID, p.optionCursor)
		if err != nil {
			p.answering = false
			return p, tea.Batch(p.refresh(), errStatus(err))
		}
		if !correct {
			p.feedback = errorStyle.Render("Wrong — " + current.Explanation)
			p.answering = false
			return p, p.refresh()
		}
		p.feedback = successStyle.Render("Correct! " + current.Explanation)
		if awarded > 0 {
			p.feedback += successStyle.Render(fmt.Sprintf("  +%d bonus minutes", awarded))
		}
		p.quizIndex++
		p.optionCursor = 0
		if p.quizIndex >= len(p.quiz) {
			p.answering = false
			return p, p.refresh()
		}
	}
	return p, nil
}

func (p puzzlesModel) view() string {
	w := p.width - 4

	if p.answering {
		return p.viewQuiz(w)
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Puzzle Extensions"))
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("Earn up to %d bonus minutes per day · %dm earned today", puzzle.DailyBonusCap, p.bonus)))
	rows = append(rows, "")

	for i, tier := range p.tiers {
		cursor := "  "
		style := normalItemStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		state := mutedStyle.Render(fmt.Sprintf("%d/%d solved", tier.PuzzlesSolved, tier.PuzzlesRequired))
		if tier.Completed {
			state = successStyle.Render("✓ complete")
		} else if !puzzle.CanAttempt(p.tiers, tier.Tier) {
			state = mutedStyle.Render("locked")
		}

		rows = append(rows, fmt.Sprintf("%s%s  %s  %s",
			cursor,
			style.Render(fmt.Sprintf("Tier %d", tier.Tier)),
			mutedStyle.Render(fmt.Sprintf("+%dm", tier.MinutesEarned)),
			state))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("enter: attempt tier"))
	if p.feedback != "" {
		rows = append(rows, "", p.feedback)
	}

	return panelStyle.Width(min(w, 64)).Render(strings.Join(rows, "\n"))
}

func (p puzzlesModel) viewQuiz(w int) string {
	current := p.quiz[p.quizIndex]

	var rows []string
	rows = append(rows, titleStyle.Render(fmt.Sprintf("Tier %d — puzzle %d of %d", p.quizTier, p.quizIndex+1, len(p.quiz))))
	rows = append(rows, "")
	rows = append(rows, current.Question)
	rows = append(rows, "")

	for i, opt := range current.Options {
		cursor := "  "
		style := normalItemStyle
		if i == p.optionCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+opt))
	}

	rows = append(rows, "")
	if p.feedback != "" {
		rows = append(rows, p.feedback, "")
	}
	rows = append(rows, mutedStyle.Render("enter: answer  esc: give up"))

	return activePanelStyle.Width(min(w, 72)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
