package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questionnaire/forms"
	"questionnaire/models"
	"questionnaire/validation"
)

func TestAnswerServiceSubmit(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AnswerService, *syncStats, *models.User, *models.Question) {
		db := openTestDB(t)
		stats := &syncStats{}
		service := NewAnswerService(db, stats)
		user := createTestUser(t, db, "test")
		question := createTestQuestion(t, db, "Test title", time.Now().Add(time.Hour))
		return service, stats, user, question
	}

	t.Run("CreateAnswer", func(t *testing.T) {
		service, stats, user, question := setup(t)

		form := forms.AnswerForm{Question: itoa(question.ID), Value: "70"}
		errs, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)
		assert.True(t, errs.IsValid())
		assert.Equal(t, 1, stats.calls)

		var answer models.Answer
		require.NoError(t, service.db.Where("user_id = ?", user.ID).First(&answer).Error)
		assert.Equal(t, 70, answer.Value)
	})

	t.Run("UpdateNotDuplicate", func(t *testing.T) {
		service, stats, user, question := setup(t)

		form := forms.AnswerForm{Question: itoa(question.ID), Value: "70"}
		_, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)

		form = forms.AnswerForm{Question: itoa(question.ID), Value: "30"}
		errs, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)
		assert.True(t, errs.IsValid())
		assert.Equal(t, 2, stats.calls)

		var count int64
		require.NoError(t, service.db.Model(&models.Answer{}).
			Where("user_id = ? AND question_id = ?", user.ID, question.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count, "second submission must update, never duplicate")

		var answer models.Answer
		require.NoError(t, service.db.Where("user_id = ?", user.ID).First(&answer).Error)
		assert.Equal(t, 30, answer.Value)
	})

	t.Run("ClosedQuestionRejected", func(t *testing.T) {
		service, stats, user, _ := setup(t)
		closed := createTestQuestion(t, service.db, "Closed", time.Now().Add(-time.Minute))

		form := forms.AnswerForm{Question: itoa(closed.ID), Value: "70"}
		errs, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)
		assert.Equal(t, []string{"Question can not be answered already"}, errs[validation.NonFieldKey])
		assert.Zero(t, stats.calls)
	})

	t.Run("LockedAnswerRejected", func(t *testing.T) {
		service, _, user, question := setup(t)

		form := forms.AnswerForm{Question: itoa(question.ID), Value: "70"}
		_, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)

		// Age the answer past the edit window.
		err = service.db.Model(&models.Answer{}).
			Where("user_id = ?", user.ID).
			Update("create_time", time.Now().Add(-2*time.Hour)).Error
		require.NoError(t, err)

		form = forms.AnswerForm{Question: itoa(question.ID), Value: "30"}
		errs, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)
		assert.Equal(t, []string{"Question can not be answered already"}, errs[validation.NonFieldKey])

		var answer models.Answer
		require.NoError(t, service.db.Where("user_id = ?", user.ID).First(&answer).Error)
		assert.Equal(t, 70, answer.Value, "locked answer keeps its original value")
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		service, _, user, _ := setup(t)

		form := forms.AnswerForm{Question: "999", Value: "70"}
		errs, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)
		assert.Contains(t, errs, "question")
	})

	t.Run("FieldErrorsSkipPersistence", func(t *testing.T) {
		service, stats, user, question := setup(t)

		form := forms.AnswerForm{Question: itoa(question.ID), Value: "50"}
		errs, err := service.Submit(ctx, user, &form)
		require.NoError(t, err)
		assert.Contains(t, errs, "value")
		assert.Zero(t, stats.calls)

		var count int64
		require.NoError(t, service.db.Model(&models.Answer{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
