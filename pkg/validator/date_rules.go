package validator

import "time"

// DateLayout is the format date inputs submit.
const DateLayout = "2006-01-02"

// DateOfBirthPolicy describes the age window and messages of a registration form.
type DateOfBirthPolicy struct {
	MinAge int
	MaxAge int
	// RejectToday treats a birth date equal to today as not in the past.
	RejectToday bool

	RequiredMessage string
	InvalidMessage  string
	FutureMessage   string
	TooYoungMessage string
	TooOldMessage   string
}

// DoctorDateOfBirth admits doctors aged 25 to 80.
func DoctorDateOfBirth() DateOfBirthPolicy {
	return DateOfBirthPolicy{
		MinAge:          25,
		MaxAge:          80,
		RequiredMessage: "Date of birth is required",
		InvalidMessage:  "Invalid date",
		FutureMessage:   "Date of birth cannot be in the future",
		TooYoungMessage: "You must be at least 25 years old",
		TooOldMessage:   "Age cannot exceed 80 years",
	}
}

// PatientDateOfBirth admits patients aged 1 to 150 born before today.
func PatientDateOfBirth() DateOfBirthPolicy {
	return DateOfBirthPolicy{
		MinAge:          1,
		MaxAge:          150,
		RejectToday:     true,
		RequiredMessage: "Date of birth is required",
		InvalidMessage:  "Please enter a valid date",
		FutureMessage:   "Date of birth must be before today",
		TooYoungMessage: "You must be at least 1 year old to register",
		TooOldMessage:   "Please enter a valid date of birth",
	}
}

// Age returns full years between birth and now, using calendar dates only.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// Rules returns the ordered date-of-birth checks evaluated against now.
func (p DateOfBirthPolicy) Rules(field, value string, now time.Time) []Rule {
	birth, parseErr := time.Parse(DateLayout, value)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	age := Age(birth, today)

	rule := func(key, message string, check func() bool) Rule {
		return Rule{
			Check: check,
			Error: ValidationError{
				Field:             field,
				Message:           message,
				TranslationKey:    key,
				TranslationValues: map[string]any{"field": field, "min": p.MinAge, "max": p.MaxAge},
			},
		}
	}

	return []Rule{
		Required(field, value).
			WithMessage("validation.date_of_birth.required", p.RequiredMessage),
		rule("validation.date_of_birth.invalid", p.InvalidMessage, func() bool {
			return parseErr == nil
		}),
		rule("validation.date_of_birth.future", p.FutureMessage, func() bool {
			if p.RejectToday {
				return birth.Before(today)
			}
			return !birth.After(today)
		}),
		rule("validation.date_of_birth.min_age", p.TooYoungMessage, func() bool {
			return age >= p.MinAge
		}),
		rule("validation.date_of_birth.max_age", p.TooOldMessage, func() bool {
			return age <= p.MaxAge
		}),
	}
}

// Validate checks a YYYY-MM-DD birth date against the policy at the given time.
func (p DateOfBirthPolicy) Validate(candidate string, now time.Time) Outcome {
	return Evaluate(p.Rules(FieldDateOfBirth, candidate, now)...)
}
