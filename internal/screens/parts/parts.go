// Package parts implements the 1-100 part grid and the loading state
// while a question set is generated.
package parts

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/screens/play"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

const gridColumns = 10

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the part selection screen.
type Model struct {
	deps     *screens.Deps
	category string
	level    quiz.Level
	grid     components.Grid

	loading      bool
	loadingPart  int
	spinnerFrame int
}

var _ screen.Screen = (*Model)(nil)

// New creates the part grid for one category/level pairing.
func New(deps *screens.Deps, category string, level quiz.Level) *Model {
	completed := deps.Tracker.CompletedInLevel(category, level)

	cells := make([]components.GridCell, 0, quiz.PartsPerLevel)
	for part := 1; part <= quiz.PartsPerLevel; part++ {
		cells = append(cells, components.GridCell{Number: part, Completed: completed[part]})
	}

	return &Model{
		deps:     deps,
		category: category,
		level:    level,
		grid:     components.NewGrid(cells, gridColumns),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return m.applyQuestions(msg)
	case questionsFailedMsg:
		return m.failLoading(msg.RequestID, friendlyError(msg.Err))
	case spinnerTickMsg:
		if !m.loading {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
		return m, spinnerTick()
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			m.grid.Move(-1, 0)
		case "down", "j":
			m.grid.Move(1, 0)
		case "left", "h":
			m.grid.Move(0, -1)
		case "right", "l":
			m.grid.Move(0, 1)
		case "enter":
			return m.startPart(m.grid.Current().Number)
		}
	}
	return m, nil
}

// startPart kicks off generation for the chosen part.
func (m *Model) startPart(part int) (screen.Screen, tea.Cmd) {
	requestID, err := m.deps.Ctrl.BeginLoading(part)
	if err != nil {
		return m, nil
	}

	m.loading = true
	m.loadingPart = part
	m.spinnerFrame = 0

	ref := quiz.PartRef{Category: m.category, Level: m.level, Part: part}
	return m, tea.Batch(generate(m.deps, requestID, ref), spinnerTick())
}

// generate runs question generation off the update loop. Without a
// configured provider the built-in bank serves as the question set.
func generate(deps *screens.Deps, requestID string, ref quiz.PartRef) tea.Cmd {
	return func() tea.Msg {
		if deps.Generator == nil {
			return questionsReadyMsg{RequestID: requestID, Questions: quiz.Bank()}
		}
		questions, err := deps.Generator.Generate(context.Background(), ref)
		if err != nil {
			return questionsFailedMsg{RequestID: requestID, Err: err}
		}
		return questionsReadyMsg{RequestID: requestID, Questions: questions}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (m *Model) applyQuestions(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	err := m.deps.Ctrl.ApplyQuestions(msg.RequestID, msg.Questions)
	if errors.Is(err, session.ErrStaleRequest) {
		return m, nil
	}
	m.loading = false
	if err != nil {
		// Empty set: the controller already reset to category selection
		// with the error banner; route back home to show it.
		return m, func() tea.Msg { return router.ResetScreenMsg{Screen: m.deps.Home()} }
	}
	return m, func() tea.Msg { return router.ResetScreenMsg{Screen: play.New(m.deps)} }
}

func (m *Model) failLoading(requestID, message string) (screen.Screen, tea.Cmd) {
	m.loading = false
	m.deps.Ctrl.FailLoading(requestID, message)
	return m, func() tea.Msg { return router.ResetScreenMsg{Screen: m.deps.Home()} }
}

// friendlyError maps generation failures to player-facing text.
func friendlyError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "The question service timed out. Please try again."
	}
	return "Could not generate questions. Please try again."
}

func (m *Model) View(width, height int) string {
	if m.loading {
		spinner := lipgloss.NewStyle().Foreground(theme.Primary).Render(spinnerFrames[m.spinnerFrame])
		msg := fmt.Sprintf("%s Preparing %s / %s / Part %d...", spinner, m.category, m.level, m.loadingPart)
		hint := theme.Hint.Render(fmt.Sprintf("Generating %d questions, this can take a minute", quiz.QuestionsPerPart))
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Body.Render(msg) + "\n\n" + hint)
	}

	completed := 0
	for _, cell := range m.grid.Cells {
		if cell.Completed {
			completed++
		}
	}

	title := theme.Title.Render(fmt.Sprintf("%s — %s", m.category, m.level))
	subtitle := theme.Subtitle.Render(fmt.Sprintf("Pick a part  ·  %d/%d completed", completed, quiz.PartsPerLevel))

	content := title + "\n" + subtitle + "\n\n" + m.grid.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) Title() string {
	return fmt.Sprintf("%s · %s", m.category, m.level)
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	if m.loading {
		return []layout.KeyHint{{Key: "ctrl+c", Description: "quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑/↓/←/→", Description: "navigate"},
		{Key: "enter", Description: "start"},
		{Key: "esc", Description: "back"},
	}
}
