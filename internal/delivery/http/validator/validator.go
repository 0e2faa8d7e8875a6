// Package validator plugs go-playground validation into Echo.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an echo.Validator backed by go-playground/validator.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(),
	}
}

// Validate validates a bound request struct against its validate tags.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
