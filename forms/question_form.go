package forms

import (
	"strconv"
	"strings"
	"time"

	"questionnaire/validation"
)

// EndTimeLayout is the wire format for question end times, also used when
// serializing questions back out.
const EndTimeLayout = "2006-01-02 15:04:05"

// QuestionForm carries the raw admin question-creation input.
type QuestionForm struct {
	Title      string `form:"title"`
	EndTime    string `form:"end_time"`
	RealAnswer string `form:"real_answer"`

	EndTimeValue    time.Time `form:"-"`
	RealAnswerValue *int      `form:"-"`
}

func (f *QuestionForm) Validate() validation.Errors {
	errs := validation.Errors{}

	if strings.TrimSpace(f.Title) == "" {
		errs.Add("title", validation.MsgRequired)
	}

	endTime := strings.TrimSpace(f.EndTime)
	if endTime == "" {
		errs.Add("end_time", validation.MsgRequired)
	} else {
		parsed, err := time.Parse(EndTimeLayout, endTime)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, endTime)
		}
		if err != nil {
			errs.Add("end_time", "Enter a valid date/time.")
		} else {
			f.EndTimeValue = parsed
		}
	}

	if realAnswer := strings.TrimSpace(f.RealAnswer); realAnswer != "" {
		n, err := strconv.Atoi(realAnswer)
		if err != nil {
			errs.Add("real_answer", validation.MsgWholeNumber)
		} else {
			msgs := validation.CheckInt(n,
				validation.MinValue(AnswerMin),
				validation.MaxValue(AnswerMax),
				validation.NotEqual(AnswerForbidden))
			for _, msg := range msgs {
				errs.Add("real_answer", msg)
			}
			if len(msgs) == 0 {
				f.RealAnswerValue = &n
			}
		}
	}

	return errs
}
