// Package login implements the display-name gate shown before any play.
package login

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

const maxNameLength = 24

// Model is the login screen.
type Model struct {
	deps    *screens.Deps
	input   components.TextInput
	errText string
}

var _ screen.Screen = (*Model)(nil)

// New creates the login screen.
func New(deps *screens.Deps) *Model {
	return &Model{
		deps:  deps,
		input: components.NewTextInput("Your name", false, maxNameLength),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.input.Init()
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (screen.Screen, tea.Cmd) {
	name := m.input.Value()
	if err := m.deps.Ctrl.Login(name); err != nil {
		m.errText = "Please enter your name to continue."
		m.input.Submit(false)
		return m, nil
	}

	// Best effort: play continues even if the name can't be persisted.
	_ = m.deps.Repos.ProfileRepo().SetName(context.Background(), m.deps.Ctrl.State().PlayerName)

	return m, func() tea.Msg {
		return router.ResetScreenMsg{Screen: m.deps.Home()}
	}
}

func (m *Model) View(width, height int) string {
	title := theme.Title.Render("QUIZDRILL")
	subtitle := theme.Subtitle.Render("Police recruitment exam practice")
	prompt := theme.Body.Render("What should we call you?")

	content := title + "\n" + subtitle + "\n\n\n" + prompt + "\n\n" + m.input.View()
	if m.errText != "" {
		content += "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(m.errText)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m *Model) Title() string {
	return "Welcome"
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "enter", Description: "continue"},
		{Key: "ctrl+c", Description: "quit"},
	}
}
