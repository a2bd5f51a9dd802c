// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PartCompletion is the predicate function for partcompletion builders.
type PartCompletion func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// QuizResult is the predicate function for quizresult builders.
type QuizResult func(*sql.Selector)
