package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/quizai/internal/aiquiz"
	"github.com/saulo-duarte/quizai/internal/apperror"
	"github.com/saulo-duarte/quizai/internal/config"
)

const (
	msgMissingFields    = "Missing required fields (topic, level, numberOfQuestions, timeLimit)"
	msgInvalidLevel     = "Invalid level. Must be one of: beginner, intermediate, expert"
	msgInvalidCount     = "Number of questions must be a positive number"
	msgInvalidTimeLimit = "Time limit must be a non-negative number"
	msgCreateFailed     = "Server error during quiz creation"
)

type QuizService interface {
	GenerateQuiz(ctx context.Context, authorID *uint, in CreateQuizRequest) (*Quiz, error)
	ListQuizzes(ctx context.Context, f ListFilter) ([]*Quiz, error)
}

type quizService struct {
	repo         QuizRepository
	generator    aiquiz.Generator
	maxQuestions int
}

func NewService(repo QuizRepository, generator aiquiz.Generator, maxQuestions int) QuizService {
	return &quizService{repo: repo, generator: generator, maxQuestions: maxQuestions}
}

// GenerateQuiz validates the request, makes one generation call and persists
// the result atomically. Nothing is stored unless the output is fully valid.
func (s *quizService) GenerateQuiz(ctx context.Context, authorID *uint, in CreateQuizRequest) (*Quiz, error) {
	log := config.WithContext(ctx)

	req, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	q := toEntity(req, generated, authorID)
	if err := s.repo.Create(ctx, q); err != nil {
		log.WithError(err).Error("Failed to persist generated quiz")
		return nil, apperror.UpstreamUnavailable(msgCreateFailed, err)
	}

	log.WithField("quiz_id", q.ID).Infof("Quiz created with %d questions", len(q.Questions))
	return q, nil
}

func (s *quizService) validate(in CreateQuizRequest) (aiquiz.GenerationRequest, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" || strings.TrimSpace(in.Level) == "" || in.NumberOfQuestions == nil || in.TimeLimit == nil {
		return aiquiz.GenerationRequest{}, apperror.Validation(msgMissingFields)
	}

	level, ok := aiquiz.ParseLevel(in.Level)
	if !ok {
		return aiquiz.GenerationRequest{}, apperror.Validation(msgInvalidLevel)
	}
	if *in.NumberOfQuestions <= 0 {
		return aiquiz.GenerationRequest{}, apperror.Validation(msgInvalidCount)
	}
	if s.maxQuestions > 0 && *in.NumberOfQuestions > s.maxQuestions {
		return aiquiz.GenerationRequest{}, apperror.Validation(
			fmt.Sprintf("Number of questions must not exceed %d", s.maxQuestions))
	}
	if *in.TimeLimit < 0 {
		return aiquiz.GenerationRequest{}, apperror.Validation(msgInvalidTimeLimit)
	}

	return aiquiz.GenerationRequest{
		Topic:             topic,
		Level:             level,
		NumberOfQuestions: *in.NumberOfQuestions,
		TimeLimit:         *in.TimeLimit,
	}, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, f ListFilter) ([]*Quiz, error) {
	quizzes, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperror.UpstreamUnavailable("Server error fetching quizzes", err)
	}
	return quizzes, nil
}
