// Package results implements the score card shown after a finished run,
// with answer review, explanations, and result sharing.
package results

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/explain"
	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/share"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// reviewWindow is how many review entries are visible at once.
const reviewWindow = 4

// explanationMsg delivers a fetched explanation for one reviewed question.
type explanationMsg struct {
	QuestionIndex int
	Text          string
}

type reviewEntry struct {
	index    int
	question quiz.Question
	chosen   int
}

// Model is the results screen. It snapshots the finished run at
// construction so the controller can be reset for the next round.
type Model struct {
	deps *screens.Deps

	playerName string
	part       quiz.PartRef
	score      int
	total      int
	persistErr error

	entries  []reviewEntry // wrong answers only
	all      []reviewEntry
	showAll  bool
	selected int

	explanations map[int]string
	fetching     map[int]bool

	note string
}

var _ screen.Screen = (*Model)(nil)

// New snapshots the controller's finished state. persistErr is the
// outcome of saving the run, surfaced as a warning only.
func New(deps *screens.Deps, persistErr error) *Model {
	st := deps.Ctrl.State()

	m := &Model{
		deps:         deps,
		playerName:   st.PlayerName,
		part:         st.PartRef(),
		score:        st.Score,
		total:        len(st.Questions),
		persistErr:   persistErr,
		explanations: make(map[int]string),
		fetching:     make(map[int]bool),
	}

	for i, q := range st.Questions {
		entry := reviewEntry{index: i, question: q, chosen: -1}
		if i < len(st.Answers) {
			entry.chosen = st.Answers[i]
		}
		m.all = append(m.all, entry)
		if entry.chosen != q.CorrectAnswer {
			m.entries = append(m.entries, entry)
		}
	}
	return m
}

func (m *Model) visible() []reviewEntry {
	if m.showAll {
		return m.all
	}
	return m.entries
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		m.explanations[msg.QuestionIndex] = msg.Text
		delete(m.fetching, msg.QuestionIndex)
		return m, nil
	case tea.KeyMsg:
		m.note = ""
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.visible())-1 {
				m.selected++
			}
		case "a":
			m.showAll = !m.showAll
			m.selected = 0
		case "e":
			return m, m.explainSelected()
		case "s":
			m.shareResult()
		case "enter", "p":
			return m.playAgain()
		}
	}
	return m, nil
}

func (m *Model) explainSelected() tea.Cmd {
	visible := m.visible()
	if m.selected >= len(visible) {
		return nil
	}
	entry := visible[m.selected]
	if m.explanations[entry.index] != "" || m.fetching[entry.index] {
		return nil
	}
	m.fetching[entry.index] = true

	explainer := m.deps.Explainer
	q := entry.question
	index := entry.index
	return func() tea.Msg {
		if explainer == nil {
			text := q.Explanation
			if text == "" {
				text = explain.FallbackText
			}
			return explanationMsg{QuestionIndex: index, Text: text}
		}
		return explanationMsg{QuestionIndex: index, Text: explainer.Explain(context.Background(), q)}
	}
}

func (m *Model) shareResult() {
	outcome, _ := m.deps.Sharer.Share(share.ResultMessage(m.playerName, m.score, m.total))
	if outcome == share.OutcomeCopied {
		m.note = "Result copied to clipboard!"
	} else {
		m.note = "Clipboard unavailable, result not copied."
	}
}

func (m *Model) playAgain() (screen.Screen, tea.Cmd) {
	if m.deps.Ctrl.State().Phase == session.PhaseFinished {
		m.deps.Ctrl.Reset()
	}
	return m, func() tea.Msg {
		return router.ResetScreenMsg{Screen: m.deps.Home()}
	}
}

func (m *Model) View(width, height int) string {
	percent := 0
	if m.total > 0 {
		percent = m.score * 100 / m.total
	}

	title := theme.Title.Render("PART COMPLETE")
	scoreLine := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%s — %d/%d (%d%%)", m.part, m.score, m.total, percent))

	body := title + "\n\n" + scoreLine + "\n"

	if m.persistErr != nil {
		body += lipgloss.NewStyle().Foreground(theme.Error).
			Render("⚠ Result could not be saved") + "\n"
	}

	body += "\n" + m.reviewView(width)

	actions := components.NewButton("Share [s]", false, nil).View() +
		"  " +
		components.NewButton("Home [enter]", true, nil).View()
	body += "\n" + actions

	if m.note != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(m.note)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (m *Model) reviewView(width int) string {
	visible := m.visible()

	label := fmt.Sprintf("Review — %d wrong", len(m.entries))
	if m.showAll {
		label = fmt.Sprintf("Review — all %d", len(m.all))
	}
	out := theme.Subtitle.Render(label) + "\n\n"

	if len(visible) == 0 {
		return out + theme.Correct.Render("Perfect score, nothing to review!") + "\n"
	}

	start := 0
	if m.selected >= reviewWindow {
		start = m.selected - reviewWindow + 1
	}
	end := min(start+reviewWindow, len(visible))

	textWidth := min(width-12, 68)
	for i := start; i < end; i++ {
		entry := visible[i]
		marker := "  "
		if i == m.selected {
			marker = "▸ "
		}

		chosen := "skipped"
		if entry.chosen >= 0 && entry.chosen < len(entry.question.Options) {
			chosen = entry.question.Options[entry.chosen]
		}
		correct := entry.question.Options[entry.question.CorrectAnswer]

		line := fmt.Sprintf("%sQ%d. %s", marker, entry.index+1, entry.question.Text)
		style := lipgloss.NewStyle().Foreground(theme.Text).Width(textWidth)
		if i == m.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		out += style.Render(line) + "\n"

		if entry.chosen != entry.question.CorrectAnswer {
			out += lipgloss.NewStyle().Foreground(theme.Error).Render("    your answer: "+chosen) + "\n"
		}
		out += lipgloss.NewStyle().Foreground(theme.Success).Render("    correct: "+correct) + "\n"

		if i == m.selected {
			switch {
			case m.fetching[entry.index]:
				out += theme.Hint.Render("    fetching explanation...") + "\n"
			case m.explanations[entry.index] != "":
				out += lipgloss.NewStyle().Foreground(theme.TextDim).Width(textWidth).
					Render("    "+m.explanations[entry.index]) + "\n"
			}
		}
		out += "\n"
	}

	return out
}

func (m *Model) Title() string {
	return "Results"
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "review"},
		{Key: "e", Description: "explain"},
		{Key: "a", Description: "all/wrong"},
		{Key: "s", Description: "share"},
		{Key: "enter", Description: "home"},
	}
}
