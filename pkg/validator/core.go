package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Map groups messages by field, preserving the order they were added in.
func (ve ValidationErrors) Map() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting the given translation key and message.
// Translation values of the original rule are kept.
func (r Rule) WithMessage(key, message string) Rule {
	r.Error.TranslationKey = key
	r.Error.Message = message
	return r
}

// When makes the rule conditional: it passes whenever cond is false.
func When(cond bool, rule Rule) Rule {
	check := rule.Check
	rule.Check = func() bool {
		return !cond || check()
	}
	return rule
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors = append(errors, rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// First evaluates rules in order and stops at the first failing one.
// The returned error holds exactly that rule's ValidationError.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return ValidationErrors{rule.Error}
		}
	}
	return nil
}

// Collect merges the results of several Apply/First calls into a single error.
// Nil results are skipped; non-validation errors are joined as-is.
func Collect(results ...error) error {
	var (
		verrs ValidationErrors
		other []error
	)

	for _, err := range results {
		if err == nil {
			continue
		}
		if ve := ExtractValidationErrors(err); ve != nil {
			verrs = append(verrs, ve...)
			continue
		}
		other = append(other, err)
	}

	if len(other) > 0 {
		if !verrs.IsEmpty() {
			other = append(other, verrs)
		}
		return errors.Join(other...)
	}
	if verrs.IsEmpty() {
		return nil
	}
	return verrs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
