package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/pointward/gateway/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("WrapsAsInvalidInput", func(t *testing.T) {
		err := WrapValidationError(assert.AnError)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("NilStaysNil", func(t *testing.T) {
		assert.Nil(t, WrapValidationError(nil))
	})
}

func TestUUIDString(t *testing.T) {
	tests := []struct {
		name        string
		value       interface{}
		expectError bool
	}{
		{name: "valid uuid", value: "018f4d2e-89ab-7cde-8123-456789abcdef", expectError: false},
		{name: "empty string left to Required", value: "", expectError: false},
		{name: "garbage", value: "not-a-uuid", expectError: true},
		{name: "not a string", value: 42, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UUIDString.Validate(tt.value)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("name"))
	assert.NoError(t, NotBlank.Validate(""))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate("\t\n"))
	assert.Error(t, NotBlank.Validate(42))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email.Validate("jane@example.com"))
	assert.NoError(t, Email.Validate(""))
	assert.Error(t, Email.Validate("not-an-email"))
	assert.Error(t, Email.Validate("@example.com"))
	assert.Error(t, Email.Validate(42))
}

func TestPositiveQuantity(t *testing.T) {
	assert.NoError(t, PositiveQuantity.Validate(1))
	assert.NoError(t, PositiveQuantity.Validate(100))
	assert.Error(t, PositiveQuantity.Validate(0))
	assert.Error(t, PositiveQuantity.Validate(-2))
	assert.Error(t, PositiveQuantity.Validate("3"))
}
