// Package validation provides custom validation rules for the application.
package validation

import (
	"net/mail"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	apperrors "github.com/pointward/gateway/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// UUIDString validates that a string value is a well-formed UUID.
// Used for subject ids exchanged with the recognition and identity backends.
var UUIDString = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_uuid", "must be a string")
	}
	if s == "" {
		// Leave empty values to the Required rule.
		return nil
	}
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_uuid", "must be a valid UUID")
	}
	return nil
})

// NotBlank validates that a string contains at least one non-whitespace
// character.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank", "must be a string")
	}
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "must not be blank")
	}
	return nil
})

// Email validates that a string is a well-formed email address.
var Email = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_email", "must be a string")
	}
	if s == "" {
		// Leave empty values to the Required rule.
		return nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return validation.NewError("validation_email", "must be a valid email address")
	}
	return nil
})

// PositiveQuantity validates that an integer value is greater than zero.
// Line items with zero or negative quantities never reach the ledger backend.
var PositiveQuantity = validation.By(func(value interface{}) error {
	n, ok := value.(int)
	if !ok {
		return validation.NewError("validation_quantity", "must be an integer")
	}
	if n <= 0 {
		return validation.NewError("validation_quantity", "must be greater than zero")
	}
	return nil
})
