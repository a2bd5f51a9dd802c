package qgen

import (
	"strings"
	"testing"

	"github.com/abhisek/quizdrill/internal/quiz"
)

func validQuestion(id string) quiz.Question {
	return quiz.Question{
		ID:            id,
		Category:      "Constitution",
		Text:          "Which part of the Constitution contains fundamental rights?",
		Options:       []string{"Part I", "Part II", "Part III", "Part IV"},
		CorrectAnswer: 2,
		Explanation:   "Part III, articles 12-35.",
	}
}

func TestValidateSet_Valid(t *testing.T) {
	set := []quiz.Question{validQuestion("a"), validQuestion("b")}
	if err := validateSet(set, 2); err != nil {
		t.Fatalf("expected valid set, got: %v", err)
	}
}

func TestValidateSet_WrongCount(t *testing.T) {
	set := []quiz.Question{validQuestion("a")}
	err := validateSet(set, 2)
	if err == nil {
		t.Fatal("expected error for wrong count")
	}
	if !strings.Contains(err.Error(), "got 1 questions, want 2") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidateSet_BadQuestionReportsIndex(t *testing.T) {
	bad := validQuestion("b")
	bad.CorrectAnswer = 9
	set := []quiz.Question{validQuestion("a"), bad}

	err := validateSet(set, 2)
	if err == nil {
		t.Fatal("expected error for out-of-range answer")
	}
	if !strings.Contains(err.Error(), "question 1 invalid") {
		t.Errorf("expected index in message, got: %v", err)
	}
}

func TestValidateSet_EmptySetIsFailure(t *testing.T) {
	if err := validateSet(nil, 47); err == nil {
		t.Fatal("expected error for empty set")
	}
}
