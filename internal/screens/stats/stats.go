// Package stats shows the run history, aggregate accuracy, and AI usage.
package stats

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/store"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

const recentLimit = 10

// statsLoadedMsg carries everything the screen shows, loaded off the
// update loop.
type statsLoadedMsg struct {
	Totals store.Totals
	Recent []store.Result
	Usage  []store.UsageStat
	Err    error
}

// Model is the stats screen.
type Model struct {
	deps   *screens.Deps
	loaded bool
	totals store.Totals
	recent []store.Result
	usage  []store.UsageStat
	err    error
}

var _ screen.Screen = (*Model)(nil)

// New creates the stats screen.
func New(deps *screens.Deps) *Model {
	return &Model{deps: deps}
}

func (m *Model) Init() tea.Cmd {
	repos := m.deps.Repos
	return func() tea.Msg {
		ctx := context.Background()
		msg := statsLoadedMsg{}

		msg.Totals, msg.Err = repos.ResultRepo().Totals(ctx)
		if msg.Err != nil {
			return msg
		}
		msg.Recent, msg.Err = repos.ResultRepo().Recent(ctx, recentLimit)
		if msg.Err != nil {
			return msg
		}
		msg.Usage, msg.Err = repos.EventRepo().UsageByPurpose(ctx)
		return msg
	}
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if lmsg, ok := msg.(statsLoadedMsg); ok {
		m.loaded = true
		m.totals = lmsg.Totals
		m.recent = lmsg.Recent
		m.usage = lmsg.Usage
		m.err = lmsg.Err
	}
	return m, nil
}

func (m *Model) View(width, height int) string {
	title := theme.Title.Render("MY STATS")

	var body string
	switch {
	case !m.loaded:
		body = theme.Hint.Render("Loading...")
	case m.err != nil:
		body = lipgloss.NewStyle().Foreground(theme.Error).Render("Could not load stats.")
	default:
		body = m.statsView()
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title + "\n\n" + body)
}

func (m *Model) statsView() string {
	accuracy := 0
	if m.totals.Questions > 0 {
		accuracy = m.totals.Correct * 100 / m.totals.Questions
	}

	summary := lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf(
		"Parts done %d/%d   Runs %d   Questions %d   Accuracy %d%%",
		m.deps.Tracker.CompletedCount(), progress.AssumedTotalParts,
		m.totals.Runs, m.totals.Questions, accuracy,
	))

	bar := components.NewProgressBar("Progress", float64(m.deps.Tracker.Percent())/100, true, 50).View()

	out := summary + "\n" + bar + "\n\n"
	out += theme.Subtitle.Render("Recent runs") + "\n"

	if len(m.recent) == 0 {
		out += theme.Hint.Render("No runs yet. Finish a part to see it here.") + "\n"
	}
	for _, r := range m.recent {
		when := r.Timestamp.Format("Jan 2 15:04")
		dur := (time.Duration(r.DurationMs) * time.Millisecond).Round(time.Second)
		line := fmt.Sprintf("%-13s %-24s %-9s part %-3d %2d/%-2d  %s",
			when, r.Category, r.Level, r.Part, r.Score, r.Total, dur)
		out += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
	}

	if len(m.usage) > 0 {
		out += "\n" + theme.Subtitle.Render("AI usage") + "\n"
		for _, u := range m.usage {
			line := fmt.Sprintf("%-14s %d requests (%d failed), %d in / %d out tokens",
				u.Purpose, u.Requests, u.Failures, u.InputTokens, u.OutputTokens)
			out += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}
	return out
}

func (m *Model) Title() string {
	return "Stats"
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "esc", Description: "back"}}
}
