package quiz

import (
	"fmt"

	"github.com/saulo-duarte/quizai/internal/aiquiz"
)

// toEntity maps a validated generation result onto the persisted document.
func toEntity(req aiquiz.GenerationRequest, generated *aiquiz.GeneratedQuiz, authorID *uint) *Quiz {
	q := &Quiz{
		Title:       generated.Title,
		Description: fmt.Sprintf("A %s level quiz about %s", req.Level, req.Topic),
		Topic:       req.Topic,
		Level:       string(req.Level),
		TimeLimit:   req.TimeLimit,
		IsPublic:    true,
		AuthorID:    authorID,
		Questions:   make([]Question, 0, len(generated.Questions)),
	}

	for i, gq := range generated.Questions {
		question := Question{
			Text:     gq.Text,
			Position: i,
			Options:  make([]Option, 0, len(gq.Options)),
		}
		for j, opt := range gq.Options {
			question.Options = append(question.Options, Option{
				Text:      opt,
				Position:  j,
				IsCorrect: j == gq.CorrectAnswer,
			})
		}
		q.Questions = append(q.Questions, question)
	}

	return q
}
