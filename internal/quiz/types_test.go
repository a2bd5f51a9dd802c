package quiz

import "testing"

func validQuestion() Question {
	return Question{
		ID:            "q-1",
		Category:      "Constitution",
		Text:          "Which article guarantees equality before law?",
		Options:       []string{"Article 12", "Article 14", "Article 16", "Article 19"},
		CorrectAnswer: 1,
	}
}

func TestQuestionValidate_OK(t *testing.T) {
	if err := validQuestion().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuestionValidate_OptionCount(t *testing.T) {
	q := validQuestion()
	q.Options = q.Options[:3]
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for 3 options")
	}

	q = validQuestion()
	q.Options = append(q.Options, "Article 21")
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for 5 options")
	}
}

func TestQuestionValidate_CorrectAnswerRange(t *testing.T) {
	for _, idx := range []int{-1, 4, 99} {
		q := validQuestion()
		q.CorrectAnswer = idx
		if err := q.Validate(); err == nil {
			t.Fatalf("expected error for correct answer index %d", idx)
		}
	}
}

func TestQuestionValidate_EmptyText(t *testing.T) {
	q := validQuestion()
	q.Text = ""
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for empty text")
	}
}

func TestQuestionValidate_EmptyOption(t *testing.T) {
	q := validQuestion()
	q.Options[2] = ""
	if err := q.Validate(); err == nil {
		t.Fatal("expected error for empty option")
	}
}

func TestPartRefID(t *testing.T) {
	ref := PartRef{Category: "Constitution", Level: LevelBasic, Part: 1}
	if got := ref.ID(); got != "Constitution-Basic-1" {
		t.Fatalf("ID = %q, want %q", got, "Constitution-Basic-1")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"Basic":    LevelBasic,
		"Medium":   LevelMedium,
		"Advanced": LevelAdvanced,
		"garbage":  LevelBasic,
		"":         LevelBasic,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBank_ShuffleDoesNotMutate(t *testing.T) {
	firstID := bank[0].ID
	for range 10 {
		qs := Bank()
		if len(qs) != BankSize() {
			t.Fatalf("Bank returned %d questions, want %d", len(qs), BankSize())
		}
		for _, q := range qs {
			if err := q.Validate(); err != nil {
				t.Fatalf("bank question invalid: %v", err)
			}
		}
	}
	if bank[0].ID != firstID {
		t.Fatal("Bank mutated the underlying slice")
	}
}
