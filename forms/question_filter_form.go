package forms

import (
	"questionnaire/validation"
)

// Boolean choice values accepted by the listing filters.
const (
	ChoiceTrue  = "true"
	ChoiceFalse = "false"
)

const titleMinLength = 2

// QuestionFilterForm carries the optional question-listing query parameters.
type QuestionFilterForm struct {
	Active    string `form:"active"`
	HasAnswer string `form:"has_answer"`
	Title     string `form:"title"`
}

func (f *QuestionFilterForm) Validate() validation.Errors {
	errs := validation.Errors{}
	choice := validation.OneOf(ChoiceTrue, ChoiceFalse)

	if f.Active != "" {
		if msg := choice(f.Active); msg != "" {
			errs.Add("active", msg)
		}
	}
	if f.HasAnswer != "" {
		if msg := choice(f.HasAnswer); msg != "" {
			errs.Add("has_answer", msg)
		}
	}
	if f.Title != "" {
		if msg := validation.MinLength(titleMinLength)(f.Title); msg != "" {
			errs.Add("title", msg)
		}
	}

	return errs
}
