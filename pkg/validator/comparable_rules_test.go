package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/carelink/pkg/validator"
)

func TestRequiredComparable(t *testing.T) {
	t.Run("passes for non-zero int", func(t *testing.T) {
		rule := validator.RequiredComparable("id", 123)
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
	})

	t.Run("fails for zero int", func(t *testing.T) {
		assert.False(t, validator.RequiredComparable("id", 0).Check())
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, validator.RequiredComparable("name", "").Check())
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, validator.Equal("password_confirm", "Abc123!@", "Abc123!@").Check())
	assert.False(t, validator.Equal("password_confirm", "Abc123!@", "abc123!@").Check())
	assert.True(t, validator.Equal("n", 3, 3).Check())
}

func TestPasswordConfirmation(t *testing.T) {
	rule := validator.PasswordConfirmation("password_confirm", "Abc123!@", "Abc123!")
	assert.False(t, rule.Check())
	assert.Equal(t, "Passwords do not match", rule.Error.Message)
	assert.Equal(t, "validation.password.mismatch", rule.Error.TranslationKey)

	assert.True(t, validator.PasswordConfirmation("password_confirm", "Abc123!@", "Abc123!@").Check())
}
