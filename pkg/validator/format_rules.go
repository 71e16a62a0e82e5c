package validator

const MaxEmailLength = 253

// EmailRules returns the registration e-mail policy. It only checks the shape the
// forms check (length, no spaces, has "@" and "."); availability is the backend's job.
func EmailRules(field, value string) []Rule {
	return []Rule{
		Required(field, value).
			WithMessage("validation.email.required", "Email is required"),
		MaxLen(field, value, MaxEmailLength).
			WithMessage("validation.email.max_length", "Email must be under 254 characters"),
		NotContains(field, value, " ").
			WithMessage("validation.email.spaces", "Email must not contain spaces"),
		ContainsAll(field, value, "@", ".").
			WithMessage("validation.email.format", `Email must contain "@" and "."`),
	}
}

// ValidateEmail checks an e-mail address against EmailRules.
func ValidateEmail(candidate string) Outcome {
	return Evaluate(EmailRules(FieldEmail, candidate)...)
}
