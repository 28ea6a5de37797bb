package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateLeadInput checks the profile fields a save must carry: a real
// name, an Israeli 10-digit phone number, and a well-formed email when one
// is given at all.
func ValidateLeadInput(input SaveLeadInput) []ValidationError {
	var errors []ValidationError

	if len(strings.TrimSpace(input.Name)) < 2 {
		errors = append(errors, ValidationError{"name", "נא להזין שם תקין"})
	}

	if !phonePattern.MatchString(input.Phone) {
		errors = append(errors, ValidationError{"phone", "טלפון חייב להכיל בדיוק 10 ספרות"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "כתובת מייל לא תקינה"})
		}
	}

	return errors
}
