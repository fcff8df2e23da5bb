package models

// AnswerType selects which side of a card the user answers with.
type AnswerType string

const (
	AnswerWithWord       AnswerType = "word"
	AnswerWithDefinition AnswerType = "definition"
)

func (a AnswerType) Valid() bool {
	return a == AnswerWithWord || a == AnswerWithDefinition
}

// Settings is the single-row user preference record.
type Settings struct {
	AnswerType AnswerType `json:"answer_type"`
	DailyGoal  int        `json:"daily_goal"`
}

func DefaultSettings() Settings {
	return Settings{
		AnswerType: AnswerWithWord,
		DailyGoal:  20,
	}
}
