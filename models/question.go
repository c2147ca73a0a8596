package models

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Title      string         `json:"title" gorm:"not null"`
	RealAnswer *int           `json:"real_answer"`
	EndTime    time.Time      `json:"end_time" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
}

// CanAnswer reports whether the question's answering window is still open.
func (q *Question) CanAnswer(now time.Time) bool {
	return !q.EndTime.Before(now)
}
