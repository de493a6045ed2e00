// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"strings"

	"campground/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates bound request structs.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with struct-level required checks enabled.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.New(Describe(err))
	}

	return nil
}

// Describe renders validation failures as "Field failed on 'tag'" pairs.
func Describe(err error) string {
	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fieldErr.Field()+" failed on '"+fieldErr.Tag()+"'")
	}

	return strings.Join(details, "; ")
}
