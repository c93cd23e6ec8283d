package user

import (
	"github.com/saulo-duarte/quizai/internal/auth"
	"gorm.io/gorm"
)

type UserContainer struct {
	Repo    UserRepository
	Service UserService
	Handler *Handler
}

func NewUserContainer(db *gorm.DB, tokens TokenIssuer, sessions *auth.Handler) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, tokens)
	handler := NewHandler(service, sessions)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
