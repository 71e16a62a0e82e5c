package validator

import "fmt"

// SpecialtyOther is the specialty choice that requires a custom specialty.
const SpecialtyOther = "Other"

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// GenderRules only requires a value; the forms accept any option text.
func GenderRules(field, value string) []Rule {
	return []Rule{
		Required(field, value).
			WithMessage("validation.gender.required", "Gender is required"),
	}
}

func ValidateGender(candidate string) Outcome {
	return Evaluate(GenderRules(FieldGender, candidate)...)
}

// SpecialtyRules requires a specialty choice. When a list of offered specialties
// is given the choice must be one of them or SpecialtyOther.
func SpecialtyRules(field, value string, offered ...string) []Rule {
	rules := []Rule{
		Required(field, value).
			WithMessage("validation.specialty.required", "Specialty is required"),
	}
	if len(offered) > 0 {
		allowed := append(append([]string{}, offered...), SpecialtyOther)
		rules = append(rules, InList(field, value, allowed).
			WithMessage("validation.specialty.unknown", "Please select a specialty from the list"))
	}
	return rules
}
