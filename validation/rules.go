package validation

import (
	"fmt"
	"unicode/utf8"
)

const (
	MsgRequired    = "This field is required."
	MsgWholeNumber = "Enter a whole number."
)

// IntRule checks an integer and returns a failure message, or "" when the
// value passes.
type IntRule func(value int) string

func MinValue(min int) IntRule {
	return func(v int) string {
		if v < min {
			return fmt.Sprintf("Ensure this value is greater than or equal to %d.", min)
		}
		return ""
	}
}

func MaxValue(max int) IntRule {
	return func(v int) string {
		if v > max {
			return fmt.Sprintf("Ensure this value is less than or equal to %d.", max)
		}
		return ""
	}
}

// NotEqual fails when the value equals the configured forbidden value. It is
// usable against any comparable type; instantiated with int it satisfies
// IntRule.
func NotEqual[T comparable](forbidden T) func(T) string {
	return func(v T) string {
		if v == forbidden {
			return fmt.Sprintf("This value can not be %v", forbidden)
		}
		return ""
	}
}

// CheckInt runs every rule and collects all failure messages.
func CheckInt(value int, rules ...IntRule) []string {
	var messages []string
	for _, rule := range rules {
		if msg := rule(value); msg != "" {
			messages = append(messages, msg)
		}
	}
	return messages
}

func OneOf(choices ...string) func(string) string {
	return func(v string) string {
		for _, choice := range choices {
			if v == choice {
				return ""
			}
		}
		return fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", v)
	}
}

func MinLength(min int) func(string) string {
	return func(v string) string {
		if utf8.RuneCountInString(v) < min {
			return fmt.Sprintf("Ensure this value has at least %d characters.", min)
		}
		return ""
	}
}
