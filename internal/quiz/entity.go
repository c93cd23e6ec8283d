package quiz

import (
	"time"

	"github.com/saulo-duarte/quizai/internal/user"
)

// Quiz owns its questions. The author reference restricts user deletion;
// quizzes generated without an authenticated user have a nil AuthorID.
type Quiz struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null;index" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Topic       string     `gorm:"type:varchar(255);not null" json:"topic"`
	Level       string     `gorm:"type:varchar(32);not null" json:"level"`
	TimeLimit   int        `gorm:"not null;default:0" json:"timeLimit"`
	IsPublic    bool       `gorm:"not null;default:true;index" json:"isPublic"`
	AuthorID    *uint      `gorm:"index" json:"authorId"`
	Author      *user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions"`
}

type Question struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	QuizID    uint      `gorm:"not null;index" json:"quizId"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"createdAt"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options"`
}

type Option struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	Position   int    `gorm:"not null" json:"position"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
}
