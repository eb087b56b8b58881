package presentation

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for echo.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
