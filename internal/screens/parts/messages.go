package parts

import (
	"time"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// questionsReadyMsg is sent when a question set has been generated. The
// request ID ties it back to the loading request it answers.
type questionsReadyMsg struct {
	RequestID string
	Questions []quiz.Question
}

// questionsFailedMsg is sent when question generation fails.
type questionsFailedMsg struct {
	RequestID string
	Err       error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
