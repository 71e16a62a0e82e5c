package sanitizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// TrimToLower removes leading and trailing whitespace and converts to
// lowercase. Role and suite names are matched through it.
var TrimToLower = Compose(Trim, ToLower)

// CapitalizeFirst upper-cases the first character and lower-cases the rest.
// Characters after a hyphen or apostrophe are not treated as word starts,
// so "o'brien" becomes "O'brien".
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(string(r)) + cases.Lower(language.Und).String(s[size:])
}

// CapitalizeWords applies CapitalizeFirst to every space-separated word.
// Runs of spaces are kept as typed.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = CapitalizeFirst(w)
	}
	return strings.Join(words, " ")
}
