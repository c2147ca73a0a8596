package services

import (
	"time"

	"questionnaire/forms"
)

// FilterCriteria is the validated question-listing input. Empty strings mean
// the filter was not supplied.
type FilterCriteria struct {
	Active    string
	HasAnswer string
	Title     string
}

// QueryParams is one side of a derived filter: every set field must hold
// (include) or must not hold (exclude) for a question to match.
type QueryParams struct {
	EndTimeFrom   *time.Time // end_time >= t
	EndTimeBefore *time.Time // end_time < t
	AnsweredBy    *uint      // an answer by this user exists
	TitleContains string     // case-insensitive substring
}

func (p QueryParams) IsEmpty() bool {
	return p.EndTimeFrom == nil && p.EndTimeBefore == nil &&
		p.AnsweredBy == nil && p.TitleContains == ""
}

// FilterParams is the pair of disjoint parameter sets a listing query applies:
// an AND of the include filters minus the exclude filters.
type FilterParams struct {
	Include QueryParams
	Exclude QueryParams
}

// DeriveParams maps filter criteria to query parameters. Pure given a fixed
// now: active selects on the answering window, has_answer on whether the user
// has an answer ("false" becomes an exclusion), title on a case-insensitive
// substring match.
func DeriveParams(criteria FilterCriteria, userID uint, now time.Time) FilterParams {
	var params FilterParams

	switch criteria.Active {
	case forms.ChoiceTrue:
		params.Include.EndTimeFrom = &now
	case forms.ChoiceFalse:
		params.Include.EndTimeBefore = &now
	}

	switch criteria.HasAnswer {
	case forms.ChoiceTrue:
		params.Include.AnsweredBy = &userID
	case forms.ChoiceFalse:
		params.Exclude.AnsweredBy = &userID
	}

	params.Include.TitleContains = criteria.Title

	return params
}
