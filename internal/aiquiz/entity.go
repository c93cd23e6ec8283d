package aiquiz

import "strings"

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelExpert       Level = "expert"
)

var AllLevels = []Level{LevelBeginner, LevelIntermediate, LevelExpert}

// ParseLevel matches s case-insensitively against the known levels.
func ParseLevel(s string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range AllLevels {
		if l == v {
			return v, true
		}
	}
	return "", false
}

const OptionsPerQuestion = 4

// GenerationRequest is already validated by the caller.
type GenerationRequest struct {
	Topic             string
	Level             Level
	NumberOfQuestions int
	TimeLimit         int
}

type GeneratedQuiz struct {
	Title     string              `json:"quizTitle"`
	Questions []GeneratedQuestion `json:"questions"`
}

type GeneratedQuestion struct {
	Text          string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}
