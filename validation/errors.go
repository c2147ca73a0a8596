package validation

import (
	"sort"
	"strings"
)

// NonFieldKey groups messages that do not belong to a single input field,
// such as business-rule violations.
const NonFieldKey = "__all__"

// Errors collects validation failures keyed by field name.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) AddNonField(message string) {
	e.Add(NonFieldKey, message)
}

func (e Errors) IsValid() bool {
	return len(e) == 0
}

// Message renders the errors as a single string: segments joined by "; ",
// non-field messages first as a bare comma-joined list, then each field as
// "<field> — <comma-joined messages>" in field-name order.
func (e Errors) Message() string {
	var segments []string
	if msgs, ok := e[NonFieldKey]; ok {
		segments = append(segments, strings.Join(msgs, ", "))
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		if field != NonFieldKey {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	for _, field := range fields {
		segments = append(segments, field+" — "+strings.Join(e[field], ", "))
	}
	return strings.Join(segments, "; ")
}
