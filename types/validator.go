package types

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance behind every request struct's
// Validate() method.
var Validate = validator.New()

// ValidateStruct runs tag validation and folds the first failure into a
// ValidationError so controllers get a 400 with a readable message.
func ValidateStruct(s interface{}) error {
	if err := Validate.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return NewValidationError("field %q failed validation rule %q", first.Field(), first.Tag())
		}
		return NewValidationError("%v", err)
	}
	return nil
}
