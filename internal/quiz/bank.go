package quiz

import "math/rand/v2"

// bank is the built-in question set served when no LLM provider is
// configured. It is intentionally small; generated parts replace it for
// normal play.
var bank = []Question{
	{
		ID:            "bank-1",
		Category:      "Constitution",
		Text:          "Which article of the Constitution of India abolishes untouchability?",
		Options:       []string{"Article 14", "Article 17", "Article 19", "Article 21"},
		CorrectAnswer: 1,
		Explanation:   "Article 17 abolishes untouchability and forbids its practice in any form.",
	},
	{
		ID:            "bank-2",
		Category:      "Constitution",
		Text:          "The concept of the Directive Principles of State Policy was borrowed from the constitution of which country?",
		Options:       []string{"United States", "Canada", "Ireland", "Australia"},
		CorrectAnswer: 2,
		Explanation:   "The Directive Principles were modelled on the Irish constitution of 1937.",
	},
	{
		ID:            "bank-3",
		Category:      "Penal Code",
		Text:          "Under the penal code, culpable homicide is defined in which section?",
		Options:       []string{"Section 299", "Section 300", "Section 302", "Section 304"},
		CorrectAnswer: 0,
		Explanation:   "Section 299 defines culpable homicide; Section 300 defines when it amounts to murder.",
	},
	{
		ID:            "bank-4",
		Category:      "Evidence Act",
		Text:          "A confession made to a police officer is:",
		Options:       []string{"Always admissible", "Admissible with corroboration", "Inadmissible against the accused", "Admissible only in writing"},
		CorrectAnswer: 2,
		Explanation:   "Confessions to police officers are barred from being proved against the accused.",
	},
	{
		ID:            "bank-5",
		Category:      "General Knowledge",
		Text:          "Which is the highest civilian award of India?",
		Options:       []string{"Padma Vibhushan", "Bharat Ratna", "Padma Bhushan", "Ashoka Chakra"},
		CorrectAnswer: 1,
		Explanation:   "The Bharat Ratna is the highest civilian honour, instituted in 1954.",
	},
	{
		ID:            "bank-6",
		Category:      "Criminal Procedure",
		Text:          "A First Information Report relates to:",
		Options:       []string{"A civil dispute", "A non-cognizable offence only", "A cognizable offence", "An appeal"},
		CorrectAnswer: 2,
		Explanation:   "An FIR sets the criminal process in motion for cognizable offences.",
	},
	{
		ID:            "bank-7",
		Category:      "State History",
		Text:          "The Dandi March of 1930 began from which ashram?",
		Options:       []string{"Sevagram", "Sabarmati", "Phoenix", "Wardha"},
		CorrectAnswer: 1,
		Explanation:   "Gandhi started the salt march from the Sabarmati ashram on 12 March 1930.",
	},
	{
		ID:            "bank-8",
		Category:      "General Knowledge",
		Text:          "Who presides over joint sittings of the two houses of Parliament?",
		Options:       []string{"The President", "The Vice President", "The Speaker of the Lok Sabha", "The Prime Minister"},
		CorrectAnswer: 2,
		Explanation:   "Joint sittings are presided over by the Speaker of the Lok Sabha.",
	},
}

// Bank returns a shuffled copy of the static bank. The original order is
// never mutated so repeated calls stay independent.
func Bank() []Question {
	shuffled := make([]Question, len(bank))
	copy(shuffled, bank)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// BankSize reports how many questions the static bank holds.
func BankSize() int {
	return len(bank)
}
