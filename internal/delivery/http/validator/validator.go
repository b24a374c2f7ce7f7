// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "github.com/kevindev10/ecommerce-api/internal/domain/errors"
)

// RequestValidator validates bound request structs via their validate tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New constructs the validator used by the echo server.
func New() *RequestValidator {
	return &RequestValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. Violations surface as the domain's
// validation error so the error middleware renders a 400 envelope.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
