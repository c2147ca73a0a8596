package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionFormValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		form := QuestionForm{Title: "Will it rain?", EndTime: "2026-10-01 12:00:00", RealAnswer: "80"}
		errs := form.Validate()
		require.True(t, errs.IsValid())
		assert.Equal(t, time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC), form.EndTimeValue)
		require.NotNil(t, form.RealAnswerValue)
		assert.Equal(t, 80, *form.RealAnswerValue)
	})

	t.Run("RFC3339EndTime", func(t *testing.T) {
		form := QuestionForm{Title: "t", EndTime: "2026-10-01T12:00:00Z"}
		errs := form.Validate()
		require.True(t, errs.IsValid())
		assert.Nil(t, form.RealAnswerValue)
	})

	t.Run("MissingFields", func(t *testing.T) {
		form := QuestionForm{}
		errs := form.Validate()
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "end_time")
	})

	t.Run("BadRealAnswer", func(t *testing.T) {
		form := QuestionForm{Title: "t", EndTime: "2026-10-01 12:00:00", RealAnswer: "50"}
		errs := form.Validate()
		assert.Equal(t, []string{"This value can not be 50"}, errs["real_answer"])
		assert.Nil(t, form.RealAnswerValue)
	})
}
