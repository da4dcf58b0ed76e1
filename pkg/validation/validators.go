package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New returns a validator with the custom tags used by the form structs registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	// notblank rejects empty and whitespace-only strings
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}
