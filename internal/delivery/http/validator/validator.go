// Package validator wires go-playground/validator into Echo's request
// validation hook.
package validator

import (
	domainerrors "mediq/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator adapts a validator.Validate instance to echo.Validator.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks a bound request struct against its validation tags.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
