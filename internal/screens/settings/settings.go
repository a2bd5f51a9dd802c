// Package settings implements log-out and the update check.
package settings

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/screens/login"
	"github.com/abhisek/quizdrill/internal/selfupdate"
	"github.com/abhisek/quizdrill/internal/share"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

// updateCheckMsg carries the result of an update check.
type updateCheckMsg struct {
	Result *selfupdate.CheckResult
	Err    error
}

// Model is the settings screen.
type Model struct {
	deps     *screens.Deps
	menu     components.Menu
	note     string
	checking bool
}

var _ screen.Screen = (*Model)(nil)

// New creates the settings screen.
func New(deps *screens.Deps) *Model {
	m := &Model{deps: deps}
	m.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Share App",
			Action: func() tea.Cmd { m.shareInvite(); return nil },
		},
		{
			Label:  "Check for updates",
			Action: func() tea.Cmd { return m.checkUpdates() },
		},
		{
			Label:  "Change name (log out)",
			Action: func() tea.Cmd { return m.logout() },
		},
	})
	return m
}

func (m *Model) shareInvite() {
	outcome, _ := m.deps.Sharer.Share(share.InviteMessage())
	if outcome == share.OutcomeCopied {
		m.note = "Invite copied to clipboard!"
	} else {
		m.note = "Clipboard unavailable, invite not copied."
	}
}

// logout clears the stored profile and returns to the name gate.
func (m *Model) logout() tea.Cmd {
	_ = m.deps.Repos.ProfileRepo().ClearName(context.Background())
	m.deps.Ctrl.Logout()
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: login.New(m.deps)}
	}
}

func (m *Model) checkUpdates() tea.Cmd {
	if m.checking || m.deps.Updater == nil {
		return nil
	}
	m.checking = true
	m.note = ""

	checker := m.deps.Updater
	version := m.deps.Version
	return func() tea.Msg {
		result, err := checker.Check(context.Background(), &selfupdate.CheckInput{Version: version})
		return updateCheckMsg{Result: result, Err: err}
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if umsg, ok := msg.(updateCheckMsg); ok {
		m.checking = false
		switch {
		case umsg.Err != nil:
			m.note = "Update check failed. Try again later."
		case umsg.Result.UpdateAvailable:
			m.note = fmt.Sprintf("Update %s available! Run: quizdrill update", umsg.Result.LatestVersion)
		default:
			m.note = "You are on the latest version."
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) View(width, height int) string {
	title := theme.Title.Render("SETTINGS")
	version := theme.Subtitle.Render("QuizDrill " + m.deps.Version)
	player := lipgloss.NewStyle().Foreground(theme.Accent).
		Render("👮 " + m.deps.Ctrl.State().PlayerName)

	body := title + "\n" + version + "\n\n" + player + "\n\n" + m.menu.View()

	if m.checking {
		body += "\n" + theme.Hint.Render("Checking for updates...")
	} else if m.note != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render(m.note)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (m *Model) Title() string {
	return "Settings"
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "navigate"},
		{Key: "enter", Description: "select"},
		{Key: "esc", Description: "back"},
	}
}
