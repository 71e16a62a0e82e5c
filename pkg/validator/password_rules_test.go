package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/carelink/pkg/validator"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  validator.Outcome
	}{
		{"exactly 8 characters with every class", "Abc123!@", validator.Valid()},
		{"exactly 64 characters", "Aa1!" + strings.Repeat("x", 60), validator.Valid()},
		{"valid with hash", "Secure#2024Pass", validator.Valid()},
		{"valid with backslash", `Back\slash1A`, validator.Valid()},
		{"valid with quote", `Quote"d1a`, validator.Valid()},
		{"empty", "", validator.Invalid("Password is required")},
		{"7 characters", "Abc12!@", validator.Invalid("Password must be at least 8 characters long")},
		{"65 characters", "Aa1!" + strings.Repeat("x", 61), validator.Invalid("Password must not exceed 64 characters")},
		{"missing uppercase", "password123!", validator.Invalid("Password must contain at least one uppercase letter (A-Z)")},
		{"missing lowercase", "PASSWORD123@", validator.Invalid("Password must contain at least one lowercase letter (a-z)")},
		{"missing digit", "Password@", validator.Invalid("Password must contain at least one number (0-9)")},
		{"missing special", "Password123", validator.Invalid("Password must contain at least one special character (!@#$%^&*, etc.)")},
		{"tilde is not special", "Password123~", validator.Invalid("Password must contain at least one special character (!@#$%^&*, etc.)")},
		{"backtick is not special", "Password123`", validator.Invalid("Password must contain at least one special character (!@#$%^&*, etc.)")},
		{"non-ascii uppercase does not count", "Ñandú123!", validator.Invalid("Password must contain at least one uppercase letter (A-Z)")},
		{"short wins over missing classes", "abc", validator.Invalid("Password must be at least 8 characters long")},
		{"uppercase wins over digit and special", "abcdefgh", validator.Invalid("Password must contain at least one uppercase letter (A-Z)")},
		{"whitespace only is present but short", "   ", validator.Invalid("Password must be at least 8 characters long")},
		{"emoji count as one character each", "Aa1!😀😀", validator.Invalid("Password must be at least 8 characters long")},
		{"eight characters including emoji", "Aa1!😀😀😀😀", validator.Valid()},
		{"64 characters including emoji", "Aa1!" + strings.Repeat("😀", 60), validator.Valid()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidatePassword(tt.input))
		})
	}
}

func TestPasswordRules(t *testing.T) {
	t.Parallel()

	t.Run("rules are ordered by priority", func(t *testing.T) {
		rules := validator.PasswordRules("password", "")
		keys := make([]string, 0, len(rules))
		for _, r := range rules {
			keys = append(keys, r.Error.TranslationKey)
		}
		assert.Equal(t, []string{
			"validation.password.required",
			"validation.password.min_length",
			"validation.password.max_length",
			"validation.password.uppercase",
			"validation.password.lowercase",
			"validation.password.digit",
			"validation.password.special",
		}, keys)
	})

	t.Run("apply reports every violation", func(t *testing.T) {
		err := validator.Apply(validator.PasswordRules("password", "abc")...)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{
			"Password must be at least 8 characters long",
			"Password must contain at least one uppercase letter (A-Z)",
			"Password must contain at least one number (0-9)",
			"Password must contain at least one special character (!@#$%^&*, etc.)",
		}, verrs.Get("password"))
	})

	t.Run("first reports the earliest violation", func(t *testing.T) {
		err := validator.First(validator.PasswordRules("password", "abc")...)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.password.min_length", verrs[0].TranslationKey)
	})
}

func TestValidatePassword_SpecialCharacterSet(t *testing.T) {
	t.Parallel()

	for _, c := range `!@#$%^&*()_+-=[]{};':"\|,.<>/?` {
		candidate := "Abcdef1" + string(c)
		assert.Equal(t, validator.Valid(), validator.ValidatePassword(candidate), "special %q", c)
	}
}
