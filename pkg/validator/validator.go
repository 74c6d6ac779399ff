// Package validator wires go-playground/validator into echo so request DTOs
// (story uploads, metadata updates, list queries) are checked against their
// struct tags at bind time.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator
type RequestValidator struct {
	v *validator.Validate
}

// New creates a validator with the default tag set, which covers everything
// the story DTOs use, including bcp47_language_tag
func New() *RequestValidator {
	return &RequestValidator{v: validator.New()}
}

// Validate performs struct validation
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.v.Struct(i)
}
