package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// spaceClass is the regexp class of characters treated as whitespace by form inputs.
const spaceClass = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

// trimSpace removes leading and trailing whitespace as matched by spaceClass.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// length counts characters, not bytes.
func length(s string) int {
	return utf8.RuneCountInString(s)
}

// Required validates that a value is present. Whitespace counts as present.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotBlank validates that a value has content other than whitespace.
func NotBlank(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return trimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return length(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return length(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// NotContains validates that a value contains none of the given substrings.
func NotContains(field, value string, substrs ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, s := range substrs {
				if strings.Contains(value, s) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not contain %q", substrs),
			TranslationKey: "validation.not_contains",
			TranslationValues: map[string]any{
				"field":   field,
				"substrs": substrs,
			},
		},
	}
}

// NotContainsFold is NotContains with case-insensitive matching.
func NotContainsFold(field, value string, substrs ...string) Rule {
	return Rule{
		Check: func() bool {
			lower := strings.ToLower(value)
			for _, s := range substrs {
				if strings.Contains(lower, strings.ToLower(s)) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not contain %q", substrs),
			TranslationKey: "validation.not_contains",
			TranslationValues: map[string]any{
				"field":   field,
				"substrs": substrs,
			},
		},
	}
}

// ContainsAll validates that every given substring occurs in value.
func ContainsAll(field, value string, substrs ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, s := range substrs {
				if !strings.Contains(value, s) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain %q", substrs),
			TranslationKey: "validation.contains",
			TranslationValues: map[string]any{
				"field":   field,
				"substrs": substrs,
			},
		},
	}
}
