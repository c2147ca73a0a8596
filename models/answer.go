package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxEditWindow is how long an answer stays editable after creation.
const MaxEditWindow = time.Hour

type Answer struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_answer_user_question"`
	QuestionID uint           `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_user_question"`
	Value      int            `json:"value" gorm:"not null"`
	CreateTime time.Time      `json:"create_time" gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relationships
	User     User     `json:"user,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Question Question `json:"question,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// CanEdit reports whether the answer may still be changed. An answer that was
// never persisted (zero CreateTime) is always editable; a persisted one only
// within MaxEditWindow of creation and only while its question is still open.
func (a *Answer) CanEdit(now time.Time) bool {
	if a.CreateTime.IsZero() {
		return true
	}
	return !a.CreateTime.Add(MaxEditWindow).Before(now) && a.Question.CanAnswer(now)
}
