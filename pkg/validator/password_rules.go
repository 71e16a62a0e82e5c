package validator

import "regexp"

const (
	MinPasswordLength = 8
	MaxPasswordLength = 64
)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	// Backtick and tilde do not count as special characters.
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// PasswordRules returns the ordered password policy:
// length 8..64 and at least one ASCII uppercase, lowercase, digit and special character.
func PasswordRules(field, value string) []Rule {
	return []Rule{
		Required(field, value).
			WithMessage("validation.password.required", "Password is required"),
		MinLen(field, value, MinPasswordLength).
			WithMessage("validation.password.min_length", "Password must be at least 8 characters long"),
		MaxLen(field, value, MaxPasswordLength).
			WithMessage("validation.password.max_length", "Password must not exceed 64 characters"),
		ContainsPattern(field, value, uppercaseRegex, "uppercase letter").
			WithMessage("validation.password.uppercase", "Password must contain at least one uppercase letter (A-Z)"),
		ContainsPattern(field, value, lowercaseRegex, "lowercase letter").
			WithMessage("validation.password.lowercase", "Password must contain at least one lowercase letter (a-z)"),
		ContainsPattern(field, value, digitRegex, "digit").
			WithMessage("validation.password.digit", "Password must contain at least one number (0-9)"),
		ContainsPattern(field, value, specialCharRegex, "special character").
			WithMessage("validation.password.special", "Password must contain at least one special character (!@#$%^&*, etc.)"),
	}
}

// ValidatePassword checks a password against PasswordRules.
func ValidatePassword(candidate string) Outcome {
	return Evaluate(PasswordRules(FieldPassword, candidate)...)
}

// PasswordConfirmation validates that the confirmation repeats the password.
func PasswordConfirmation(field, password, confirmation string) Rule {
	return Equal(field, confirmation, password).
		WithMessage("validation.password.mismatch", "Passwords do not match")
}
