// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizdrill/ent/llmrequestevent"
	"github.com/abhisek/quizdrill/ent/partcompletion"
	"github.com/abhisek/quizdrill/ent/profile"
	"github.com/abhisek/quizdrill/ent/quizresult"
	"github.com/abhisek/quizdrill/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	partcompletionFields := schema.PartCompletion{}.Fields()
	_ = partcompletionFields
	// partcompletionDescCategory is the schema descriptor for category field.
	partcompletionDescCategory := partcompletionFields[0].Descriptor()
	// partcompletion.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	partcompletion.CategoryValidator = partcompletionDescCategory.Validators[0].(func(string) error)
	// partcompletionDescLevel is the schema descriptor for level field.
	partcompletionDescLevel := partcompletionFields[1].Descriptor()
	// partcompletion.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	partcompletion.LevelValidator = partcompletionDescLevel.Validators[0].(func(string) error)
	// partcompletionDescPart is the schema descriptor for part field.
	partcompletionDescPart := partcompletionFields[2].Descriptor()
	// partcompletion.PartValidator is a validator for the "part" field. It is called by the builders before save.
	partcompletion.PartValidator = partcompletionDescPart.Validators[0].(func(int) error)
	// partcompletionDescCompletedAt is the schema descriptor for completed_at field.
	partcompletionDescCompletedAt := partcompletionFields[3].Descriptor()
	// partcompletion.DefaultCompletedAt holds the default value on creation for the completed_at field.
	partcompletion.DefaultCompletedAt = partcompletionDescCompletedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescDisplayName is the schema descriptor for display_name field.
	profileDescDisplayName := profileFields[0].Descriptor()
	// profile.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	profile.DisplayNameValidator = profileDescDisplayName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[1].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[2].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizresultMixin := schema.QuizResult{}.Mixin()
	quizresultMixinFields0 := quizresultMixin[0].Fields()
	_ = quizresultMixinFields0
	quizresultFields := schema.QuizResult{}.Fields()
	_ = quizresultFields
	// quizresultDescTimestamp is the schema descriptor for timestamp field.
	quizresultDescTimestamp := quizresultMixinFields0[1].Descriptor()
	// quizresult.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresult.DefaultTimestamp = quizresultDescTimestamp.Default.(func() time.Time)
	// quizresultDescCategory is the schema descriptor for category field.
	quizresultDescCategory := quizresultFields[0].Descriptor()
	// quizresult.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	quizresult.CategoryValidator = quizresultDescCategory.Validators[0].(func(string) error)
	// quizresultDescLevel is the schema descriptor for level field.
	quizresultDescLevel := quizresultFields[1].Descriptor()
	// quizresult.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	quizresult.LevelValidator = quizresultDescLevel.Validators[0].(func(string) error)
	// quizresultDescPart is the schema descriptor for part field.
	quizresultDescPart := quizresultFields[2].Descriptor()
	// quizresult.PartValidator is a validator for the "part" field. It is called by the builders before save.
	quizresult.PartValidator = quizresultDescPart.Validators[0].(func(int) error)
	// quizresultDescScore is the schema descriptor for score field.
	quizresultDescScore := quizresultFields[3].Descriptor()
	// quizresult.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizresult.ScoreValidator = quizresultDescScore.Validators[0].(func(int) error)
	// quizresultDescTotal is the schema descriptor for total field.
	quizresultDescTotal := quizresultFields[4].Descriptor()
	// quizresult.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	quizresult.TotalValidator = quizresultDescTotal.Validators[0].(func(int) error)
	// quizresultDescDurationMs is the schema descriptor for duration_ms field.
	quizresultDescDurationMs := quizresultFields[5].Descriptor()
	// quizresult.DefaultDurationMs holds the default value on creation for the duration_ms field.
	quizresult.DefaultDurationMs = quizresultDescDurationMs.Default.(int64)
}
