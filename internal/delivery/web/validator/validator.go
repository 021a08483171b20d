// Package validator plugs go-playground/validator into echo.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate validates a bound request struct.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
