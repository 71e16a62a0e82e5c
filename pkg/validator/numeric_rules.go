package validator

import (
	"fmt"
	"math"
	"strconv"
)

const MaxExperienceYears = 50

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// parseNumber reads a decimal number the way a numeric form input does:
// surrounding whitespace is ignored and a blank string reads as zero.
func parseNumber(value string) (float64, bool) {
	trimmed := trimSpace(value)
	if trimmed == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// ExperienceRules returns the years-of-experience policy: a whole number in 0..50.
func ExperienceRules(field, value string) []Rule {
	n, ok := parseNumber(value)
	return []Rule{
		Required(field, value).
			WithMessage("validation.experience.required", "Years of experience is required"),
		{
			Check: func() bool { return ok },
			Error: ValidationError{
				Field:             field,
				Message:           "Years of experience must be a valid number",
				TranslationKey:    "validation.experience.number",
				TranslationValues: map[string]any{"field": field},
			},
		},
		{
			Check: func() bool { return !math.IsInf(n, 0) && n == math.Trunc(n) },
			Error: ValidationError{
				Field:             field,
				Message:           "Years of experience must be a whole number (no decimals)",
				TranslationKey:    "validation.experience.whole",
				TranslationValues: map[string]any{"field": field},
			},
		},
		MinNum(field, n, 0).
			WithMessage("validation.experience.negative", "Years of experience cannot be negative"),
		MaxNum(field, n, MaxExperienceYears).
			WithMessage("validation.experience.max", "Years of experience cannot exceed 50"),
	}
}

// ValidateExperience checks years of experience against ExperienceRules.
func ValidateExperience(candidate string) Outcome {
	return Evaluate(ExperienceRules(FieldExperience, candidate)...)
}
