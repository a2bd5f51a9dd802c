// Package play implements the in-quiz screen: one question at a time,
// immediate right/wrong feedback, and on-demand AI explanations.
package play

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
	"github.com/abhisek/quizdrill/internal/screens/results"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// explanationMsg delivers a fetched explanation. Number ties it to the
// question that asked for it so late arrivals don't leak across questions.
type explanationMsg struct {
	Number int
	Text   string
}

// Model is the in-quiz screen.
type Model struct {
	deps *screens.Deps

	q      quiz.Question
	number int
	total  int
	choice components.MultiChoice

	answered    bool
	lastCorrect bool
	finished    bool
	persistErr  error

	explanation string
	fetching    bool
}

var _ screen.Screen = (*Model)(nil)

// New creates the quiz screen positioned at the controller's current question.
func New(deps *screens.Deps) *Model {
	m := &Model{deps: deps}
	m.loadCurrent()
	return m
}

// loadCurrent pulls the question awaiting an answer from the controller.
func (m *Model) loadCurrent() {
	st := m.deps.Ctrl.State()
	m.total = len(st.Questions)
	m.number = st.Index + 1

	q, ok := m.deps.Ctrl.CurrentQuestion()
	if !ok {
		return
	}
	m.q = q
	m.choice = components.NewMultiChoice(q.Text, q.Options, q.CorrectAnswer)
	m.answered = false
	m.explanation = ""
	m.fetching = false
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if emsg, ok := msg.(explanationMsg); ok {
		if emsg.Number == m.number {
			m.explanation = emsg.Text
			m.fetching = false
		}
		return m, nil
	}

	if !m.answered {
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			return m.submit()
		}
		return m, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch kmsg.String() {
	case "e":
		if m.explanation == "" && !m.fetching {
			m.fetching = true
			return m, m.fetchExplanation()
		}
	case "enter", "n":
		return m.advance()
	}
	return m, nil
}

// submit records the chosen answer with the controller.
func (m *Model) submit() (screen.Screen, tea.Cmd) {
	correct, finished, err := m.deps.Ctrl.SubmitAnswer(context.Background(), m.choice.ChosenIndex)
	m.answered = true
	m.lastCorrect = correct
	m.finished = finished
	m.persistErr = err
	return m, nil
}

// advance moves to the next question, or to the results screen after the last.
func (m *Model) advance() (screen.Screen, tea.Cmd) {
	if m.finished {
		return m, func() tea.Msg {
			return router.ResetScreenMsg{Screen: results.New(m.deps, m.persistErr)}
		}
	}
	m.loadCurrent()
	return m, nil
}

// fetchExplanation asks the explainer off the update loop. The explainer
// never errors; worst case it returns fallback text.
func (m *Model) fetchExplanation() tea.Cmd {
	q := m.q
	number := m.number
	explainer := m.deps.Explainer
	return func() tea.Msg {
		if explainer == nil {
			text := q.Explanation
			if text == "" {
				text = explain.FallbackText
			}
			return explanationMsg{Number: number, Text: text}
		}
		return explanationMsg{Number: number, Text: explainer.Explain(context.Background(), q)}
	}
}

func (m *Model) View(width, height int) string {
	st := m.deps.Ctrl.State()

	header := theme.Subtitle.Render(fmt.Sprintf("%s  ·  Question %d of %d  ·  Score %d",
		st.PartRef(), m.number, m.total, st.Score))

	bar := components.NewProgressBar("", float64(m.number-1)/float64(max(m.total, 1)), false, 50).View()

	body := header + "\n" + bar + "\n\n" + m.choice.View()

	if m.answered {
		if m.lastCorrect {
			body += "\n" + theme.Correct.Render("✓ Correct!")
		} else {
			body += "\n" + theme.Incorrect.Render("✗ Wrong answer")
		}

		switch {
		case m.fetching:
			body += "\n\n" + theme.Hint.Render("Fetching explanation...")
		case m.explanation != "":
			body += "\n\n" + lipgloss.NewStyle().
				Foreground(theme.Text).
				Width(min(width-10, 70)).
				Render(m.explanation)
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (m *Model) Title() string {
	return "Quiz"
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	if !m.answered {
		return []layout.KeyHint{
			{Key: "a-d", Description: "answer"},
			{Key: "↑/↓", Description: "navigate"},
			{Key: "enter", Description: "submit"},
		}
	}
	hints := []layout.KeyHint{{Key: "enter", Description: "next"}}
	if m.finished {
		hints[0].Description = "results"
	}
	if m.explanation == "" && !m.fetching {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "explain"})
	}
	return hints
}
