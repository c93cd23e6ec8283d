package quiz

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizRepository interface {
	Create(ctx context.Context, q *Quiz) error
	GetByID(ctx context.Context, id uint) (*Quiz, error)
	List(ctx context.Context, f ListFilter) ([]*Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// Migrate must run after user.Migrate because quizzes reference users.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Quiz{}, &Question{}, &Option{})
}

// Create inserts the quiz with its questions and options in one transaction.
func (r *quizRepository) Create(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(q).Error
	})
}

func (r *quizRepository) GetByID(ctx context.Context, id uint) (*Quiz, error) {
	var q Quiz
	err := withContent(r.db.WithContext(ctx)).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) List(ctx context.Context, f ListFilter) ([]*Quiz, error) {
	query := r.db.WithContext(ctx).Model(&Quiz{})

	switch {
	case f.ID != nil:
		query = query.Where("id = ?", *f.ID)
	case f.PublicOnly:
		query = query.Where("is_public = ?", true)
	case f.UserID != nil:
		query = query.Where("author_id = ?", *f.UserID)
	default:
		query = query.Where("is_public = ?", true)
	}

	if term := strings.TrimSpace(f.Query); term != "" {
		query = query.Where("LOWER(title) LIKE LOWER(?) ESCAPE '!'", "%"+escapeLike(term)+"%")
	}

	quizzes := make([]*Quiz, 0)
	if err := withContent(query).Order("id DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func withContent(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
