package validator

import (
	"fmt"
	"regexp"
	"unicode"
)

// MatchesRegex validates against a pre-compiled pattern. Empty values never match.
func MatchesRegex(field, value string, pattern *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     pattern.String(),
				"description": description,
			},
		},
	}
}

// NoWhitespace validates that a string contains no whitespace characters.
func NoWhitespace(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for _, char := range value {
				if unicode.IsSpace(char) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain whitespace characters",
			TranslationKey: "validation.no_whitespace",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
