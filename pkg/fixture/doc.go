// Package fixture runs literal (input, expected outcome) corpora against the
// field validators and capitalization helpers.
//
// Suites are YAML documents. A validator suite names a registry field; every
// case without an expected reason must be valid:
//
//	name: phone
//	field: phone
//	cases:
//	  - description: "Valid: 10 digits"
//	    input: "1234567890"
//	  - description: "Invalid: Contains hyphens"
//	    input: "123-456-7890"
//	    expected: "Phone number must contain only digits (0-9)"
//
// A transform suite names a sanitizer and lists the output of each case.
// Long inputs are built with repeat, absent values (null, undefined) with
// absent: true. Suites that depend on the current date pin it with now.
//
// The Runner prints one ✓/✗ line per case followed by "N/M tests passed",
// which is what cmd/fieldcheck shows on the terminal.
package fixture
