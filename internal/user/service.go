package user

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/saulo-duarte/quizai/internal/apperror"
	"github.com/saulo-duarte/quizai/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	passwordHashCost = 10
	maxPasswordBytes = 72
)

const (
	msgRegisterFieldsRequired = "All fields are required"
	msgLoginFieldsRequired    = "Email and password are required"
	msgPasswordTooLong        = "Password must be at most 72 bytes"
	msgUserExists             = "User already exists"
	msgInvalidCredentials     = "Invalid credentials"
)

type TokenIssuer interface {
	Generate(userID uint) (string, time.Time, error)
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, time.Time, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}

type userService struct {
	repo   UserRepository
	tokens TokenIssuer
}

func NewService(repo UserRepository, tokens TokenIssuer) UserService {
	return &userService{repo: repo, tokens: tokens}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareAgainstDummy spends the same bcrypt time as a real comparison so
// unknown emails cannot be told apart by latency.
func compareAgainstDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), passwordHashCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*User, error) {
	log := config.WithContext(ctx)

	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return nil, apperror.Validation(msgRegisterFieldsRequired)
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, apperror.Validation(msgPasswordTooLong)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		log.WithField("email", email).Warn("Registration attempt for existing email")
		return nil, apperror.Conflict(msgUserExists)
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, apperror.Internal("look up user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordHashCost)
	if err != nil {
		return nil, apperror.Internal("hash password", err)
	}

	u := &User{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperror.Conflict(msgUserExists)
		}
		return nil, apperror.Internal("create user", err)
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return u, nil
}

// Login returns the same AuthError for an unknown email and a wrong password.
func (s *userService) Login(ctx context.Context, in LoginInput) (*LoginResult, time.Time, error) {
	log := config.WithContext(ctx)

	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, time.Time{}, apperror.Validation(msgLoginFieldsRequired)
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			compareAgainstDummy(in.Password)
			log.Warn("Login failed")
			return nil, time.Time{}, apperror.Auth(msgInvalidCredentials)
		}
		return nil, time.Time{}, apperror.Internal("look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		log.WithField("user_id", u.ID).Warn("Login failed")
		return nil, time.Time{}, apperror.Auth(msgInvalidCredentials)
	}

	token, expiresAt, err := s.tokens.Generate(u.ID)
	if err != nil {
		return nil, time.Time{}, apperror.Internal("issue token", err)
	}

	log.WithField("user_id", u.ID).Info("User logged in")
	return &LoginResult{User: u, Token: token}, expiresAt, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.Auth("User no longer exists")
		}
		return nil, apperror.Internal("look up user", err)
	}
	return u, nil
}
