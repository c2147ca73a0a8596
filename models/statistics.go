package models

import (
	"time"

	"gorm.io/gorm"
)

// Statistics caches per-user answer counts. It is derived data, recomputed in
// full from Answers and Questions on every answer save, never patched
// incrementally.
type Statistics struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	UserID              uint           `json:"user_id" gorm:"not null;uniqueIndex"`
	AnsweredQuestions   int64          `json:"answered_questions" gorm:"not null;default:0"`
	UnansweredQuestions int64          `json:"unanswered_questions" gorm:"not null;default:0"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	User User `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
