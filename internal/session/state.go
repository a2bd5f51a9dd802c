package session

import (
	"time"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// Phase represents where the player is in the app flow. Transitions are
// owned by the Controller; screens only read the phase.
type Phase int

const (
	PhaseLoggedOut         Phase = iota // No display name yet
	PhaseSelectingCategory              // Picking a subject
	PhaseSelectingLevel                 // Picking a difficulty level
	PhaseSelectingPart                  // Picking a part number
	PhaseLoading                        // Question generation in flight
	PhaseInQuiz                         // Answering questions
	PhaseFinished                       // Showing results
)

func (p Phase) String() string {
	switch p {
	case PhaseLoggedOut:
		return "logged-out"
	case PhaseSelectingCategory:
		return "selecting-category"
	case PhaseSelectingLevel:
		return "selecting-level"
	case PhaseSelectingPart:
		return "selecting-part"
	case PhaseLoading:
		return "loading"
	case PhaseInQuiz:
		return "in-quiz"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is the runtime state of one player's app flow.
type State struct {
	// Phase is the current flow phase.
	Phase Phase

	// PlayerName is the display name entered at login.
	PlayerName string

	// Category, Level, and Part hold the current selection. Part is 0
	// until one is chosen.
	Category string
	Level    quiz.Level
	Part     int

	// RequestID tags the in-flight generation request. Responses carrying
	// any other tag are stale and discarded.
	RequestID string

	// Questions is the active question set.
	Questions []quiz.Question

	// Index is the position of the current question.
	Index int

	// Score is the count of correct answers so far.
	Score int

	// Answers records the chosen option index per question, -1 if the
	// chosen index was out of range.
	Answers []int

	// LoadError holds the message from the last failed generation, shown
	// once on return to category selection.
	LoadError string

	// StartedAt is when the first question was displayed.
	StartedAt time.Time
}

// PartRef returns the current selection as a catalog reference.
func (s State) PartRef() quiz.PartRef {
	return quiz.PartRef{Category: s.Category, Level: s.Level, Part: s.Part}
}
