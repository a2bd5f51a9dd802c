package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdrill/internal/app"
	"github.com/abhisek/quizdrill/internal/explain"
	"github.com/abhisek/quizdrill/internal/llm"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/qgen"
	"github.com/abhisek/quizdrill/internal/screens"
	"github.com/abhisek/quizdrill/internal/selfupdate"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/share"
	"github.com/abhisek/quizdrill/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	repos := openRepos(cmd)
	defer repos.Close()

	tracker, err := progress.NewTracker(ctx, repos.CompletionRepo(), repos.ResultRepo())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	ctrl := session.NewController(tracker)
	if name, err := repos.ProfileRepo().Name(ctx); err == nil {
		ctrl.Restore(name)
	}

	deps := &screens.Deps{
		Ctrl:    ctrl,
		Tracker: tracker,
		Sharer:  share.NewClipboardSharer(),
		Repos:   repos,
		Updater: selfupdate.NewChecker(),
		Version: version,
	}

	provider, err := llm.NewProviderFromEnv(ctx, repos.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Playing with the built-in question bank; AI generation unavailable.")
	} else {
		deps.Generator = qgen.New(provider, qgen.DefaultConfig())
		deps.Explainer = explain.New(provider, explain.DefaultConfig())
	}

	return app.Run(deps)
}

// openRepos opens the SQLite store, falling back to in-memory storage so
// a broken database never blocks play.
func openRepos(cmd *cobra.Command) store.Repos {
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var st *store.Store
		if st, err = store.Open(dbPath); err == nil {
			return st
		}
	}

	fmt.Fprintln(os.Stderr, "Storage unavailable:", err)
	fmt.Fprintln(os.Stderr, "Progress will not be saved this session.")
	return store.NewMemory()
}
