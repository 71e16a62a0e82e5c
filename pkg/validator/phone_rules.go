package validator

import "regexp"

const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 15
)

var digitsOnlyRegex = regexp.MustCompile(`^[0-9]+$`)

// PhoneRules returns the ordered phone policy. The charset check runs before the
// length checks, so "123-456-7890" is reported as a charset violation.
func PhoneRules(field, value string) []Rule {
	return []Rule{
		Required(field, value).
			WithMessage("validation.phone.required", "Phone number is required"),
		Matches(field, value, digitsOnlyRegex, "digits").
			WithMessage("validation.phone.digits", "Phone number must contain only digits (0-9)"),
		MinLen(field, value, MinPhoneDigits).
			WithMessage("validation.phone.min_length", "Phone number must be at least 10 digits"),
		MaxLen(field, value, MaxPhoneDigits).
			WithMessage("validation.phone.max_length", "Phone number must not exceed 15 digits"),
	}
}

// ValidatePhone checks a phone number against PhoneRules.
func ValidatePhone(candidate string) Outcome {
	return Evaluate(PhoneRules(FieldPhone, candidate)...)
}
