// Package screens holds the dependency bundle shared by all screen
// packages. Screens receive a single *Deps instead of long constructor
// argument lists; the app layer fills it in once at startup.
package screens

import (
	"github.com/abhisek/quizdrill/internal/explain"
	"github.com/abhisek/quizdrill/internal/progress"
	"github.com/abhisek/quizdrill/internal/qgen"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/selfupdate"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/share"
	"github.com/abhisek/quizdrill/internal/store"
)

// Deps carries everything a screen may need. Generator and Explainer are
// nil when no LLM provider is configured; screens degrade to the static
// question bank and fallback explanation text.
type Deps struct {
	Ctrl      *session.Controller
	Tracker   *progress.Tracker
	Generator qgen.Generator
	Explainer explain.Explainer
	Sharer    share.Sharer
	Repos     store.Repos
	Updater   *selfupdate.Checker
	Version   string

	// Home breaks the play-again import cycle: the results screen needs
	// to route back to a fresh home screen without importing its package.
	Home func() screen.Screen
}
