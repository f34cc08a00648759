package requests

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CommonValidationErrors maps validator failures to per-field messages.
// Message keys follow the "Field_tag" convention.
func CommonValidationErrors(err error, messages map[string]string) map[string]string {
	fieldErrors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		key := fieldErr.Field() + "_" + fieldErr.Tag()
		if msg, found := messages[key]; found {
			fieldErrors[fieldErr.Field()] = msg
		} else {
			fieldErrors[fieldErr.Field()] = "This field is invalid"
		}
	}

	return fieldErrors
}
