package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// ErrStaleRequest is returned when a generation response arrives for a
// request that is no longer current. The response must be discarded.
var ErrStaleRequest = errors.New("stale generation request")

// Recorder persists the outcome of a finished run. The controller calls it
// exactly once per finish; idempotency of repeat completions is the
// recorder's concern.
type Recorder interface {
	// MarkCompleted records that the part was finished at least once.
	MarkCompleted(ctx context.Context, part quiz.PartRef) error

	// RecordResult appends the run to the result history.
	RecordResult(ctx context.Context, part quiz.PartRef, score, total int, duration time.Duration) error
}

// Controller owns the app flow state machine. All transitions go through
// its methods; invalid transitions return errors instead of mutating state.
// It is not safe for concurrent use — the TUI drives it from a single
// update loop.
type Controller struct {
	state    State
	recorder Recorder
}

// NewController creates a Controller in the logged-out phase.
func NewController(recorder Recorder) *Controller {
	return &Controller{
		state:    State{Phase: PhaseLoggedOut},
		recorder: recorder,
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Restore seeds the player name from the stored profile, skipping the
// login gate. A blank name leaves the controller logged out.
func (c *Controller) Restore(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	c.state.PlayerName = name
	c.state.Phase = PhaseSelectingCategory
}

// Login sets the display name and enters category selection.
func (c *Controller) Login(name string) error {
	if c.state.Phase != PhaseLoggedOut {
		return fmt.Errorf("login not allowed in phase %s", c.state.Phase)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("display name must not be blank")
	}
	c.state.PlayerName = name
	c.state.Phase = PhaseSelectingCategory
	return nil
}

// Logout clears all state and returns to the login gate.
func (c *Controller) Logout() {
	c.state = State{Phase: PhaseLoggedOut}
}

// SelectCategory picks a subject and advances to level selection.
func (c *Controller) SelectCategory(name string) error {
	if c.state.Phase != PhaseSelectingCategory {
		return fmt.Errorf("category selection not allowed in phase %s", c.state.Phase)
	}
	c.state.Category = name
	c.state.LoadError = ""
	c.state.Phase = PhaseSelectingLevel
	return nil
}

// SelectLevel picks a difficulty level and advances to part selection.
func (c *Controller) SelectLevel(level quiz.Level) error {
	if c.state.Phase != PhaseSelectingLevel {
		return fmt.Errorf("level selection not allowed in phase %s", c.state.Phase)
	}
	c.state.Level = level
	c.state.Phase = PhaseSelectingPart
	return nil
}

// BeginLoading picks a part and starts question generation. The returned
// request ID must accompany the eventual ApplyQuestions or FailLoading
// call; anything else that arrives is stale.
func (c *Controller) BeginLoading(part int) (string, error) {
	if c.state.Phase != PhaseSelectingPart {
		return "", fmt.Errorf("loading not allowed in phase %s", c.state.Phase)
	}
	if part < 1 || part > quiz.PartsPerLevel {
		return "", fmt.Errorf("part %d out of range 1-%d", part, quiz.PartsPerLevel)
	}
	c.state.Part = part
	c.state.RequestID = uuid.NewString()
	c.state.Phase = PhaseLoading
	return c.state.RequestID, nil
}

// ApplyQuestions installs a generated question set and starts the quiz.
// Responses tagged with a superseded request ID are discarded. An empty
// set is a generation failure, not a playable quiz.
func (c *Controller) ApplyQuestions(requestID string, questions []quiz.Question) error {
	if c.state.Phase != PhaseLoading || requestID != c.state.RequestID {
		return ErrStaleRequest
	}
	if len(questions) == 0 {
		c.FailLoading(requestID, "generation returned no questions")
		return errors.New("generation returned no questions")
	}

	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = -1
	}

	c.state.Questions = questions
	c.state.Answers = answers
	c.state.Index = 0
	c.state.Score = 0
	c.state.RequestID = ""
	c.state.StartedAt = time.Now()
	c.state.Phase = PhaseInQuiz
	return nil
}

// FailLoading records a generation failure and resets the selection back
// to category choice. Stale failures are ignored.
func (c *Controller) FailLoading(requestID, message string) {
	if c.state.Phase != PhaseLoading || requestID != c.state.RequestID {
		return
	}
	c.state.Category = ""
	c.state.Level = ""
	c.state.Part = 0
	c.state.RequestID = ""
	c.state.LoadError = message
	c.state.Phase = PhaseSelectingCategory
}

// CurrentQuestion returns the question awaiting an answer.
func (c *Controller) CurrentQuestion() (quiz.Question, bool) {
	if c.state.Phase != PhaseInQuiz || c.state.Index >= len(c.state.Questions) {
		return quiz.Question{}, false
	}
	return c.state.Questions[c.state.Index], true
}

// SubmitAnswer scores the current question and advances. A choice outside
// the option range counts as incorrect. Answering the last question
// finishes the quiz and persists the outcome.
func (c *Controller) SubmitAnswer(ctx context.Context, choice int) (correct bool, finished bool, err error) {
	if c.state.Phase != PhaseInQuiz {
		return false, false, fmt.Errorf("answer not allowed in phase %s", c.state.Phase)
	}

	q := c.state.Questions[c.state.Index]
	if choice < 0 || choice >= len(q.Options) {
		c.state.Answers[c.state.Index] = -1
	} else {
		c.state.Answers[c.state.Index] = choice
		correct = choice == q.CorrectAnswer
	}
	if correct {
		c.state.Score++
	}

	c.state.Index++
	if c.state.Index < len(c.state.Questions) {
		return correct, false, nil
	}

	c.state.Phase = PhaseFinished
	err = c.recordFinish(ctx)
	return correct, true, err
}

// recordFinish persists the completion and result. Persistence failure
// doesn't undo the finish; the caller decides whether to surface it.
func (c *Controller) recordFinish(ctx context.Context) error {
	if c.recorder == nil {
		return nil
	}

	part := c.state.PartRef()
	duration := time.Since(c.state.StartedAt)

	if err := c.recorder.MarkCompleted(ctx, part); err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}
	if err := c.recorder.RecordResult(ctx, part, c.state.Score, len(c.state.Questions), duration); err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// Reset returns to category selection for another round, keeping the login.
func (c *Controller) Reset() {
	name := c.state.PlayerName
	c.state = State{Phase: PhaseSelectingCategory, PlayerName: name}
}
