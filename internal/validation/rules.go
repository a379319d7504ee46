// Package validation provides custom validation rules for the application.
package validation

import (
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tokengen/internal/errors"
)

// Required rejects nil pointers but, unlike validation.Required, accepts pointers to
// zero values such as "".
var Required = validation.NotNil.ErrorObject(
	validation.NewError("validation_required", "is required"),
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}
