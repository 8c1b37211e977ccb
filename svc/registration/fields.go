package registration

import (
	"fmt"

	"github.com/dmitrymomot/formflow/pkg/sanitizer"
	"github.com/dmitrymomot/formflow/pkg/validator"
)

const maxNameLength = 10

var fieldLabels = map[Field]string{
	FirstName: "First name",
	LastName:  "Last name",
}

// ValidateOneField checks a single field value. It returns the message of
// the first failing rule and true, or "" and false when the value is valid
// or the field is unknown.
func ValidateOneField(field Field, value string) (string, bool) {
	verr, failed := validator.First(fieldRules(field, value)...)
	if !failed {
		return "", false
	}
	return verr.Message, true
}

func fieldRules(field Field, value string) []validator.Rule {
	key := string(field)
	switch field {
	case FirstName, LastName:
		return nameRules(key, fieldLabels[field], sanitizer.Trim(value))
	case Email:
		return []validator.Rule{
			validator.ValidEmail(key, value).WithMessage("Email is formatted incorrectly."),
		}
	case Phone:
		return []validator.Rule{
			validator.ValidPhone(key, value).WithMessage("Phone number is improperly formatted."),
		}
	default:
		return nil
	}
}

func nameRules(key, label, value string) []validator.Rule {
	return []validator.Rule{
		validator.Required(key, value).
			WithMessage(label + " can't be empty."),
		validator.MaxLen(key, value, maxNameLength).
			WithMessage(fmt.Sprintf("%s can be no longer than %d characters.", label, maxNameLength)),
		validator.NoWhitespace(key, value).
			WithMessage(fmt.Sprintf("%s can be no longer than %d characters and must not contain whitespace.", label, maxNameLength)),
	}
}
