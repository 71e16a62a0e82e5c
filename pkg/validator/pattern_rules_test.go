package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/carelink/pkg/validator"
)

func TestMatches(t *testing.T) {
	re := regexp.MustCompile(`^[0-9]+$`)

	rule := validator.Matches("code", "12345", re, "digits")
	assert.True(t, rule.Check())
	assert.Equal(t, "must match digits pattern", rule.Error.Message)
	assert.Equal(t, "validation.regex_pattern", rule.Error.TranslationKey)
	assert.Equal(t, `^[0-9]+$`, rule.Error.TranslationValues["pattern"])

	assert.False(t, validator.Matches("code", "12a45", re, "digits").Check())
	assert.False(t, validator.Matches("code", "", re, "digits").Check())
}

func TestDoesNotMatch(t *testing.T) {
	re := regexp.MustCompile(`<[a-z]+>`)

	assert.True(t, validator.DoesNotMatch("bio", "a < b > c", re, "tag").Check())
	assert.False(t, validator.DoesNotMatch("bio", "hello <b>world", re, "tag").Check())
}

func TestContainsPattern(t *testing.T) {
	re := regexp.MustCompile(`[A-Z]`)

	assert.True(t, validator.ContainsPattern("password", "abcD", re, "uppercase").Check())
	assert.False(t, validator.ContainsPattern("password", "abcd", re, "uppercase").Check())
}

func TestNoConsecutiveWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"single spaces", "John Paul Doe", true},
		{"two spaces", "John  Doe", false},
		{"space and tab", "John \tDoe", false},
		{"trailing double space", "John  ", false},
		{"non-breaking space pair", "John\u00a0\u00a0Doe", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.NoConsecutiveWhitespace("name", tt.value).Check())
		})
	}
}

func TestMaxWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"three spaces", "John Paul George Ringo", true},
		{"four spaces", "One Two Three Four Five", false},
		{"tabs count", "a\tb\tc\td\te", false},
		{"no spaces", "John", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.MaxWhitespace("name", tt.value, 3)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, 3, rule.Error.TranslationValues["max"])
		})
	}
}
