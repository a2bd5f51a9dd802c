// Package home implements the main menu: subject picker, overall
// progress, and entry points to stats, sharing, and settings.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/screens/levels"
	"github.com/abhisek/quizdrill/internal/screens/settings"
	"github.com/abhisek/quizdrill/internal/screens/stats"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/share"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// Model is the home screen.
type Model struct {
	deps *screens.Deps
	menu components.Menu
	note string
}

var _ screen.Screen = (*Model)(nil)

// New creates the home screen.
func New(deps *screens.Deps) *Model {
	m := &Model{deps: deps}

	items := make([]components.MenuItem, 0, len(quiz.Categories)+4)
	for _, cat := range quiz.Categories {
		category := cat.Name
		items = append(items, components.MenuItem{
			Label:  fmt.Sprintf("%s  %s", cat.Icon, cat.Name),
			Action: func() tea.Cmd { return m.startCategory(category) },
		})
	}
	items = append(items,
		components.MenuItem{
			Label:  "📊  My Stats",
			Action: func() tea.Cmd { return pushScreen(stats.New(deps)) },
		},
		components.MenuItem{
			Label:  "📤  Share App",
			Action: func() tea.Cmd { m.shareInvite(); return nil },
		},
		components.MenuItem{
			Label:  "⚙  Settings",
			Action: func() tea.Cmd { return pushScreen(settings.New(deps)) },
		},
		components.MenuItem{
			Label:  "🚪  Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)
	m.menu = components.NewMenu(items)
	return m
}

func pushScreen(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// startCategory picks a subject and moves to level selection. Coming back
// here via esc leaves the controller mid-selection, so re-entering the
// picker resets the flow first.
func (m *Model) startCategory(category string) tea.Cmd {
	if m.deps.Ctrl.State().Phase != session.PhaseSelectingCategory {
		m.deps.Ctrl.Reset()
	}
	if err := m.deps.Ctrl.SelectCategory(category); err != nil {
		return nil
	}
	return pushScreen(levels.New(m.deps, category))
}

func (m *Model) shareInvite() {
	outcome, _ := m.deps.Sharer.Share(share.InviteMessage())
	if outcome == share.OutcomeCopied {
		m.note = "Invite copied to clipboard. Paste it anywhere!"
	} else {
		m.note = "Clipboard unavailable. Invite: " + share.InviteMessage()
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && m.note != "" {
		m.note = ""
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) View(width, height int) string {
	st := m.deps.Ctrl.State()

	greeting := theme.Title.Render(fmt.Sprintf("Hello, %s!", st.PlayerName))
	subtitle := theme.Subtitle.Render("Pick a subject to practice")

	bar := components.NewProgressBar(
		"Overall",
		float64(m.deps.Tracker.Percent())/100,
		true,
		46,
	).View()

	content := greeting + "\n" + subtitle + "\n\n" + bar + "\n\n"

	if st.LoadError != "" {
		content += lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ "+st.LoadError) + "\n\n"
	}

	content += m.menu.View()

	if m.note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(m.note)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) Title() string {
	return "Home"
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "select"},
		{Key: "ctrl+c", Description: "quit"},
	}
}
