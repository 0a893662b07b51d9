// internal/intake/validator.go
package intake

import (
	"regexp"
	"strings"

	"brand-intake/internal/common/errors"
)

const (
	MsgRequired   = "This field is required"
	MsgInvalidURL = "Please enter a valid URL starting with http:// or https://"
)

var websitePattern = regexp.MustCompile(`^https?://.+`)

// ValidateField checks one answer. It returns the message to show and false
// when the answer cannot be accepted.
func ValidateField(field Field, value string) (string, bool) {
	q, ok := QuestionFor(field)
	if !ok {
		return "", true
	}

	if q.Required && strings.TrimSpace(value) == "" {
		return MsgRequired, false
	}

	if field == FieldWebsiteLink && value != "" && !websitePattern.MatchString(value) {
		return MsgInvalidURL, false
	}

	return "", true
}

// ValidateForm runs ValidateField over every question in order and reports
// the first failure.
func ValidateForm(form IntakeForm) error {
	for _, q := range Questions {
		if msg, ok := ValidateField(q.Field, form.Value(q.Field)); !ok {
			return errors.NewIntakeValidationError(string(q.Field), msg)
		}
	}
	return nil
}
