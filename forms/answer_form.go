package forms

import (
	"strconv"
	"strings"

	"questionnaire/validation"
)

// AnswerMin, AnswerMax and AnswerForbidden bound a valid answer value. 50 is
// excluded because it expresses no opinion either way.
const (
	AnswerMin       = 0
	AnswerMax       = 100
	AnswerForbidden = 50
)

// AnswerForm carries the raw answer-submission input. Validate parses it and
// reports every failing field at once.
type AnswerForm struct {
	Question string `form:"question"`
	Value    string `form:"value"`

	QuestionID uint `form:"-"`
	Answer     int  `form:"-"`
}

func (f *AnswerForm) Validate() validation.Errors {
	errs := validation.Errors{}

	question := strings.TrimSpace(f.Question)
	if question == "" {
		errs.Add("question", validation.MsgRequired)
	} else if id, err := strconv.ParseUint(question, 10, 32); err != nil {
		errs.Add("question", "Select a valid choice. That choice is not one of the available choices.")
	} else {
		f.QuestionID = uint(id)
	}

	value := strings.TrimSpace(f.Value)
	if value == "" {
		errs.Add("value", validation.MsgRequired)
	} else if n, err := strconv.Atoi(value); err != nil {
		errs.Add("value", validation.MsgWholeNumber)
	} else {
		f.Answer = n
		for _, msg := range validation.CheckInt(n,
			validation.MinValue(AnswerMin),
			validation.MaxValue(AnswerMax),
			validation.NotEqual(AnswerForbidden)) {
			errs.Add("value", msg)
		}
	}

	return errs
}
