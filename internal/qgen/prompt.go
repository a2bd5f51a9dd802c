package qgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdrill/internal/quiz"
)

const systemPrompt = `You are the chief question-paper setter for a state police recruitment (constable and sub-inspector) written exam.

Rules:
- Produce exactly the requested number of multiple-choice questions for the given subject, difficulty level, and part number.
- Every question has exactly 4 options and exactly one correct answer.
- No question may repeat a question from any other part of the same subject and level. Each part must be entirely fresh material.
- Questions must be exam-grade: precise wording, plausible distractors drawn from common confusions, no trick phrasing.
- Match the stated difficulty level. Basic tests recall, Medium tests application, Advanced tests fine distinctions and exceptions.
- For the Current Affairs subject, use events from the last twelve months only.
- For the Previous Year Papers subject, draw on questions actually asked in recruitment exams between 2012 and 2022.
- Include a short explanation with each question stating why the correct option is right.`

// buildUserMessage constructs the user message for one part.
func buildUserMessage(part quiz.PartRef, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", part.Category)
	fmt.Fprintf(&b, "Difficulty level: %s\n", part.Level)
	fmt.Fprintf(&b, "Part number: %d (this is part %d of %d)\n", part.Part, part.Part, quiz.PartsPerLevel)
	fmt.Fprintf(&b, "Question count: exactly %d MCQ questions\n", cfg.Count)

	return b.String()
}
