package validator

import "regexp"

const (
	MinBioLength = 50
	MaxBioLength = 1000
	markupReason = "Bio cannot contain HTML tags or scripts"
)

// htmlTagRegex needs a closing '>' so "a<5 or b>10" and "<--" are not tags.
var htmlTagRegex = regexp.MustCompile(`<[` + spaceClass + `]*/?[a-zA-Z][a-zA-Z0-9]*[^>]*>`)

// BioRules returns the doctor bio policy. Bio is optional, so an empty value has no rules.
//
// The minimum length only applies when the trimmed bio is non-empty, which lets a
// whitespace-only bio through as valid.
func BioRules(field, value string) []Rule {
	if value == "" {
		return nil
	}

	trimmed := trimSpace(value)
	return []Rule{
		DoesNotMatch(field, value, htmlTagRegex, "HTML tag").
			WithMessage("validation.bio.markup", markupReason),
		// Catches "<script" without a closing bracket, which the tag pattern misses.
		NotContainsFold(field, value, "<script", "</script>").
			WithMessage("validation.bio.markup", markupReason),
		When(trimmed != "", MinLen(field, trimmed, MinBioLength)).
			WithMessage("validation.bio.min_length", "Bio must be at least 50 characters"),
		MaxLen(field, value, MaxBioLength).
			WithMessage("validation.bio.max_length", "Bio must not exceed 1000 characters"),
	}
}

// ValidateBio checks a doctor bio against BioRules.
func ValidateBio(candidate string) Outcome {
	return Evaluate(BioRules(FieldBio, candidate)...)
}
