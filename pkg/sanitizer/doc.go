// Package sanitizer normalizes user input before it is validated.
//
// The helpers are small pure functions. Compose chains them and Fields
// assigns a chain to each form field:
//
//	fields := sanitizer.Fields{
//		"email":     sanitizer.Trim,
//		"full_name": sanitizer.Compose(sanitizer.Trim, sanitizer.CapitalizeWords),
//	}
//	fields.Apply("full_name", "  ada lovelace") // "Ada Lovelace"
//	fields.Apply("phone", " 123")                // " 123", no entry
//
// CapitalizeFirst and CapitalizeWords reproduce the capitalization the
// registration forms apply while the user types.
package sanitizer
