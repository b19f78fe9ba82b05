package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a request field name to its validation messages.
type FieldErrors map[string][]string

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the wire name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks struct fields and returns field-keyed messages, or nil.
func Validate(v interface{}) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs := make(FieldErrors)
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = append(errs[fe.Field()], message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "gte", "min":
		return "Ensure this value is greater than or equal to " + fe.Param() + "."
	case "lte", "max":
		return "Ensure this value is less than or equal to " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}
