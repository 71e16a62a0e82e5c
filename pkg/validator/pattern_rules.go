package validator

import (
	"fmt"
	"regexp"
)

var consecutiveSpaceRegex = regexp.MustCompile(`[` + spaceClass + `]{2,}`)

// Matches validates that the whole value satisfies a pre-compiled pattern.
// The pattern is expected to carry its own anchors.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// DoesNotMatch validates that no part of the value matches the pattern.
func DoesNotMatch(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return !re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not match %s pattern", description),
			TranslationKey: "validation.regex_not_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// ContainsPattern validates that a string contains a specific pattern.
func ContainsPattern(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain %s", description),
			TranslationKey: "validation.contains_pattern",
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// NoConsecutiveWhitespace rejects values with two or more whitespace characters in a row.
func NoConsecutiveWhitespace(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !consecutiveSpaceRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain consecutive whitespace",
			TranslationKey: "validation.consecutive_whitespace",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxWhitespace limits the total number of whitespace characters in a value.
func MaxWhitespace(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			count := 0
			for _, r := range value {
				if isSpace(r) {
					count++
					if count > max {
						return false
					}
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at most %d whitespace characters", max),
			TranslationKey: "validation.max_whitespace",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
