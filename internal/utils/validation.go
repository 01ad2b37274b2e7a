package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns binding failures into field -> message pairs.
// Non-validation errors (malformed JSON) come back under "body".
func FormatValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["body"] = err.Error()
		return out
	}
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "gt":
			out[field] = field + " must be greater than " + e.Param()
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
