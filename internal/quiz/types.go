package quiz

import "fmt"

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// PartsPerLevel is the number of numbered practice sets per category/level pairing.
const PartsPerLevel = 100

// QuestionsPerPart is the question count of a full generated practice set.
const QuestionsPerPart = 47

// Question is a single multiple-choice question ready for display.
type Question struct {
	// ID identifies the question within its part. Generated sets use
	// provider-assigned string ids; the static bank uses "bank-N".
	ID string

	// Category is the subject label the question belongs to.
	Category string

	// Text is the question prompt shown to the player.
	Text string

	// Options holds exactly OptionCount answer choices.
	Options []string

	// CorrectAnswer is the index into Options of the right choice.
	CorrectAnswer int

	// Explanation is an optional short rationale bundled with the question.
	Explanation string
}

// Validate checks the structural invariants every question must satisfy.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question %q has %d options, want %d", q.ID, len(q.Options), OptionCount)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %q option %d is empty", q.ID, i)
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("question %q correct answer index %d out of range", q.ID, q.CorrectAnswer)
	}
	return nil
}

// Level is the difficulty tier of a practice set.
type Level string

const (
	LevelBasic    Level = "Basic"
	LevelMedium   Level = "Medium"
	LevelAdvanced Level = "Advanced"
)

// Levels lists the tiers in ascending difficulty order.
var Levels = []Level{LevelBasic, LevelMedium, LevelAdvanced}

// ParseLevel maps a stored level string back to a Level.
// Unknown strings fall back to Basic.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelMedium:
		return LevelMedium
	case LevelAdvanced:
		return LevelAdvanced
	default:
		return LevelBasic
	}
}

// CategoryInfo describes a subject available for practice.
type CategoryInfo struct {
	Name string
	Icon string
}

// Categories is the fixed subject catalog.
var Categories = []CategoryInfo{
	{Name: "Penal Code", Icon: "⚖"},
	{Name: "Criminal Procedure", Icon: "📜"},
	{Name: "Evidence Act", Icon: "🔍"},
	{Name: "Constitution", Icon: "🏛"},
	{Name: "State History", Icon: "🗺"},
	{Name: "General Knowledge", Icon: "💡"},
	{Name: "Current Affairs", Icon: "📰"},
	{Name: "Daily Challenge", Icon: "🎯"},
	{Name: "Previous Year Papers", Icon: "📚"},
}

// PartRef identifies one practice set within the catalog.
type PartRef struct {
	Category string
	Level    Level
	Part     int
}

// ID returns the canonical persisted identifier, "<category>-<level>-<part>".
func (p PartRef) ID() string {
	return fmt.Sprintf("%s-%s-%d", p.Category, p.Level, p.Part)
}

func (p PartRef) String() string {
	return fmt.Sprintf("%s / %s / Part %d", p.Category, p.Level, p.Part)
}
