package validator

import (
	"fmt"
	"regexp"
)

const (
	MinNameLength        = 2
	MaxNameLength        = 30
	MaxFullNameSpaces    = 3
	MinSpecialtyLength   = 3
	MaxSpecialtyLength   = 50
	fullNameCharsMessage = "Full name must contain only letters and may include hyphens (-) or apostrophes (')"
)

var (
	// One letter, or a letter, any run of letters/whitespace/hyphens/apostrophes, and a letter.
	personNameRegex = regexp.MustCompile(`^[A-Za-z]([A-Za-z` + spaceClass + `'-])*[A-Za-z]$|^[A-Za-z]$`)
	specialtyRegex  = regexp.MustCompile(`^[A-Za-z` + spaceClass + `]+$`)
)

// FullNameRules returns the ordered full-name policy. Length and charset are
// checked on the trimmed value, whitespace rules on the value as entered.
func FullNameRules(field, value string) []Rule {
	trimmed := trimSpace(value)
	return []Rule{
		Required(field, value).
			WithMessage("validation.full_name.required", "Full name is required"),
		MinLen(field, trimmed, MinNameLength).
			WithMessage("validation.full_name.min_length", "Full name must be at least 2 characters"),
		MaxLen(field, trimmed, MaxNameLength).
			WithMessage("validation.full_name.max_length", "Full name must not exceed 30 characters"),
		NoConsecutiveWhitespace(field, value).
			WithMessage("validation.full_name.consecutive_spaces", "Full name cannot contain consecutive spaces"),
		MaxWhitespace(field, value, MaxFullNameSpaces).
			WithMessage("validation.full_name.max_spaces", "Full name can contain at most 3 spaces"),
		Matches(field, trimmed, personNameRegex, "person name").
			WithMessage("validation.full_name.chars", fullNameCharsMessage),
	}
}

// ValidateFullName checks a full name against FullNameRules.
func ValidateFullName(candidate string) Outcome {
	return Evaluate(FullNameRules(FieldFullName, candidate)...)
}

// PersonNameRules returns the policy for a single name part (first, middle, last).
// Messages are prefixed with label. An empty optional name has no rules.
func PersonNameRules(field, label, value string, optional bool) []Rule {
	if optional && value == "" {
		return nil
	}

	trimmed := trimSpace(value)
	return []Rule{
		Required(field, value).
			WithMessage("validation.name.required", fmt.Sprintf("%s is required", label)),
		MinLen(field, trimmed, MinNameLength).
			WithMessage("validation.name.min_length", fmt.Sprintf("%s must be at least 2 characters", label)),
		MaxLen(field, trimmed, MaxNameLength).
			WithMessage("validation.name.max_length", fmt.Sprintf("%s must not exceed 30 characters", label)),
		Matches(field, trimmed, personNameRegex, "person name").
			WithMessage("validation.name.chars", fmt.Sprintf("%s must contain only letters, and may include hyphens (-) or apostrophes (')", label)),
	}
}

// ValidatePersonName checks one name part, labelling messages with label.
func ValidatePersonName(label, candidate string, optional bool) Outcome {
	return Evaluate(PersonNameRules("name", label, candidate, optional)...)
}

func ValidateFirstName(candidate string) Outcome {
	return ValidatePersonName("First name", candidate, false)
}

func ValidateMiddleName(candidate string) Outcome {
	return ValidatePersonName("Middle name", candidate, true)
}

func ValidateLastName(candidate string) Outcome {
	return ValidatePersonName("Last name", candidate, false)
}

// CustomSpecialtyRules applies when a doctor picks "Other" as specialty.
func CustomSpecialtyRules(field, value string) []Rule {
	trimmed := trimSpace(value)
	return []Rule{
		NotBlank(field, value).
			WithMessage("validation.custom_specialty.required", `Custom specialty is required when "Other" is selected`),
		MinLen(field, trimmed, MinSpecialtyLength).
			WithMessage("validation.custom_specialty.min_length", "Custom specialty must be at least 3 characters"),
		MaxLen(field, trimmed, MaxSpecialtyLength).
			WithMessage("validation.custom_specialty.max_length", "Custom specialty must not exceed 50 characters"),
		Matches(field, trimmed, specialtyRegex, "letters and spaces").
			WithMessage("validation.custom_specialty.chars", "Custom specialty must contain only letters and spaces"),
	}
}

func ValidateCustomSpecialty(candidate string) Outcome {
	return Evaluate(CustomSpecialtyRules(FieldCustomSpecialty, candidate)...)
}
