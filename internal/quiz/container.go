package quiz

import (
	"github.com/saulo-duarte/quizai/internal/aiquiz"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, generator aiquiz.Generator, maxQuestions int) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, generator, maxQuestions)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
