// Package share builds the outgoing invite and result-card messages and
// puts them on the system clipboard. A terminal app has no native share
// sheet, so the clipboard is the share surface.
package share

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Outcome reports how a share attempt ended.
type Outcome int

const (
	// OutcomeCopied means the message landed on the clipboard.
	OutcomeCopied Outcome = iota

	// OutcomeFailed means no share surface was available. The message is
	// still returned so the UI can display it for manual copying.
	OutcomeFailed
)

// appURL is where the invite points.
const appURL = "https://github.com/abhisek/quizdrill"

// Sharer puts a message on the share surface.
type Sharer interface {
	// Share attempts to share the message and reports the outcome.
	// The message is always returned so the UI can fall back to
	// displaying it.
	Share(message string) (Outcome, string)
}

// InviteMessage is the app invite, shared from the home screen.
func InviteMessage() string {
	return fmt.Sprintf(
		"The best prep app for the police recruitment written exam! 4700+ MCQs and 100 free parts per subject. Start your prep now: %s",
		appURL,
	)
}

// ResultMessage is the score card, shared from the results screen.
func ResultMessage(playerName string, score, total int) string {
	return fmt.Sprintf(
		"QuizDrill: %s scored %d/%d! Check your own police exam prep: %s",
		playerName, score, total, appURL,
	)
}

// ClipboardSharer implements Sharer via the system clipboard.
type ClipboardSharer struct{}

// NewClipboardSharer creates the standard sharer.
func NewClipboardSharer() *ClipboardSharer {
	return &ClipboardSharer{}
}

func (*ClipboardSharer) Share(message string) (Outcome, string) {
	if err := clipboard.WriteAll(message); err != nil {
		return OutcomeFailed, message
	}
	return OutcomeCopied, message
}
