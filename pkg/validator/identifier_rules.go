package validator

import "regexp"

var licenseNumberRegex = regexp.MustCompile(`^[A-Za-z0-9/-]+$`)

// LicenseNumberRules returns the medical license policy: letters, digits, hyphens
// and slashes in any position, no length bound.
func LicenseNumberRules(field, value string) []Rule {
	return []Rule{
		Required(field, value).
			WithMessage("validation.license_number.required", "License number is required"),
		Matches(field, value, licenseNumberRegex, "license number").
			WithMessage("validation.license_number.chars", "License number must contain only letters, numbers, hyphens, or slashes"),
	}
}

// ValidateLicenseNumber checks a license number against LicenseNumberRules.
func ValidateLicenseNumber(candidate string) Outcome {
	return Evaluate(LicenseNumberRules(FieldLicenseNumber, candidate)...)
}
