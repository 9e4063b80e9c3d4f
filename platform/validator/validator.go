// Package validator wraps go-playground/validator for request validation.
// It belongs to the platform layer and carries no business logic.
package validator

import "github.com/go-playground/validator/v10"

// Validator wraps the go-playground validator. Modules receive an instance
// through their constructors so custom rules stay scoped and testable.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with no custom rules registered.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Struct validates a struct based on its validation tags.
func (val *Validator) Struct(s interface{}) error {
	return val.v.Struct(s)
}

// Var validates a single value against a tag expression.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}

// RegisterValidation registers a custom validation function under a tag.
func (val *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return val.v.RegisterValidation(tag, fn)
}
