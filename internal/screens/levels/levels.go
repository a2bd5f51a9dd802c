// Package levels implements the difficulty picker for a chosen subject.
package levels

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/screens/parts"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

var descriptions = map[quiz.Level]string{
	quiz.LevelBasic:    "fundamentals and direct questions",
	quiz.LevelMedium:   "applied questions with distractors",
	quiz.LevelAdvanced: "exam-hard, multi-step questions",
}

// Model is the level selection screen.
type Model struct {
	deps     *screens.Deps
	category string
	menu     components.Menu
}

var _ screen.Screen = (*Model)(nil)

// New creates the level picker for the given subject.
func New(deps *screens.Deps, category string) *Model {
	m := &Model{deps: deps, category: category}

	items := make([]components.MenuItem, 0, len(quiz.Levels))
	for _, lvl := range quiz.Levels {
		level := lvl
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%-10s %s", level, theme.Hint.Render(descriptions[level])),
			Action: func() tea.Cmd { return m.pick(level) },
		})
	}
	m.menu = components.NewMenu(items)
	return m
}

// pick advances to part selection. If the user backed out of the part
// grid, the controller is mid-flow, so the selection path is replayed.
func (m *Model) pick(level quiz.Level) tea.Cmd {
	if m.deps.Ctrl.State().Phase != session.PhaseSelectingLevel {
		m.deps.Ctrl.Reset()
		if err := m.deps.Ctrl.SelectCategory(m.category); err != nil {
			return nil
		}
	}
	if err := m.deps.Ctrl.SelectLevel(level); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: parts.New(m.deps, m.category, level)}
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) View(width, height int) string {
	title := theme.Title.Render(m.category)
	subtitle := theme.Subtitle.Render("Choose a difficulty level")

	done := m.deps.Tracker
	counts := ""
	for i, lvl := range quiz.Levels {
		if i > 0 {
			counts += "   "
		}
		n := len(done.CompletedInLevel(m.category, lvl))
		counts += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s %d/%d", lvl, n, quiz.PartsPerLevel))
	}

	content := title + "\n" + subtitle + "\n\n" + counts + "\n\n" + m.menu.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) Title() string {
	return m.category
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "select"},
		{Key: "esc", Description: "back"},
	}
}
