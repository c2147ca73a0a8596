package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"questionnaire/forms"
	"questionnaire/models"
	"questionnaire/validation"
)

// StatsEnqueuer schedules a statistics recalculation for a user. The call
// must not block the submitting request.
type StatsEnqueuer interface {
	Enqueue(userID uint)
}

type AnswerService struct {
	db    *gorm.DB
	stats StatsEnqueuer
}

func NewAnswerService(db *gorm.DB, stats StatsEnqueuer) *AnswerService {
	return &AnswerService{db: db, stats: stats}
}

// Submit creates or updates the user's answer to a question. Field errors are
// reported together; the closed-question and locked-answer rules surface as
// non-field errors. A successful save enqueues a statistics recalculation and
// returns before it completes.
func (s *AnswerService) Submit(ctx context.Context, user *models.User, form *forms.AnswerForm) (validation.Errors, error) {
	errs := form.Validate()
	if !errs.IsValid() {
		return errs, nil
	}

	now := time.Now()

	var question models.Question
	err := s.db.WithContext(ctx).First(&question, form.QuestionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		errs.Add("question", "Select a valid choice. That choice is not one of the available choices.")
		return errs, nil
	}
	if err != nil {
		return nil, err
	}

	var existing models.Answer
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND question_id = ?", user.ID, question.ID).
		First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if found {
		existing.Question = question
		if !existing.CanEdit(now) || !question.CanAnswer(now) {
			errs.AddNonField("Question can not be answered already")
			return errs, nil
		}
		err = s.db.WithContext(ctx).Model(&existing).Update("value", form.Answer).Error
	} else {
		if !question.CanAnswer(now) {
			errs.AddNonField("Question can not be answered already")
			return errs, nil
		}
		answer := models.Answer{UserID: user.ID, QuestionID: question.ID, Value: form.Answer}
		err = s.db.WithContext(ctx).Create(&answer).Error
	}
	if err != nil {
		return nil, err
	}

	s.stats.Enqueue(user.ID)
	return nil, nil
}
