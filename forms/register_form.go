package forms

import (
	"strings"

	"questionnaire/validation"
)

const passwordMinLength = 8

// RegisterForm carries the raw registration input.
type RegisterForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (f *RegisterForm) Validate() validation.Errors {
	errs := validation.Errors{}

	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" {
		errs.Add("username", validation.MsgRequired)
	}

	if f.Password == "" {
		errs.Add("password", validation.MsgRequired)
	} else if msg := validation.MinLength(passwordMinLength)(f.Password); msg != "" {
		errs.Add("password", msg)
	}

	return errs
}
