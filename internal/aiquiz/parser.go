package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/saulo-duarte/quizai/internal/apperror"
)

const msgBadAIResponse = "Failed to parse AI response."

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// rawQuiz mirrors the schema loosely so that missing fields and non-integer
// indexes can be told apart from zero values.
type rawQuiz struct {
	QuizTitle string         `json:"quizTitle"`
	Questions *[]rawQuestion `json:"questions"`
}

type rawQuestion struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer *float64 `json:"correctAnswer"`
}

// extractJSON returns the body of the first ```json fenced block, or the
// trimmed input when there is none.
func extractJSON(raw string) string {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// ParseQuiz decodes model output into a GeneratedQuiz and checks it against
// the response contract. Any violation is an UpstreamFormat error carrying raw.
func ParseQuiz(raw string, req GenerationRequest) (*GeneratedQuiz, error) {
	fail := func(err error) error {
		return apperror.UpstreamFormat(msgBadAIResponse, raw, err)
	}

	payload := extractJSON(raw)
	if payload == "" {
		return nil, fail(errors.New("empty response"))
	}

	var parsed rawQuiz
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fail(fmt.Errorf("decode quiz json: %w", err))
	}
	if parsed.Questions == nil || len(*parsed.Questions) == 0 {
		return nil, fail(errors.New("invalid quiz data structure: questions missing or empty"))
	}

	questions := *parsed.Questions
	if req.NumberOfQuestions > 0 && len(questions) != req.NumberOfQuestions {
		return nil, fail(fmt.Errorf("expected %d questions, got %d", req.NumberOfQuestions, len(questions)))
	}

	quiz := &GeneratedQuiz{
		Title:     strings.TrimSpace(parsed.QuizTitle),
		Questions: make([]GeneratedQuestion, 0, len(questions)),
	}
	if quiz.Title == "" {
		quiz.Title = fmt.Sprintf("%s Quiz", req.Topic)
	}

	for i, q := range questions {
		gq, err := validateQuestion(q)
		if err != nil {
			return nil, fail(fmt.Errorf("question %d: %w", i, err))
		}
		quiz.Questions = append(quiz.Questions, gq)
	}

	return quiz, nil
}

func validateQuestion(q rawQuestion) (GeneratedQuestion, error) {
	text := strings.TrimSpace(q.QuestionText)
	if text == "" {
		return GeneratedQuestion{}, errors.New("empty question text")
	}
	if len(q.Options) != OptionsPerQuestion {
		return GeneratedQuestion{}, fmt.Errorf("expected %d options, got %d", OptionsPerQuestion, len(q.Options))
	}
	if q.CorrectAnswer == nil {
		return GeneratedQuestion{}, errors.New("missing correctAnswer")
	}
	idx := *q.CorrectAnswer
	if idx != math.Trunc(idx) || idx < 0 || idx >= OptionsPerQuestion {
		return GeneratedQuestion{}, fmt.Errorf("correctAnswer %v out of range", idx)
	}

	return GeneratedQuestion{
		Text:          text,
		Options:       append([]string(nil), q.Options...),
		CorrectAnswer: int(idx),
	}, nil
}
