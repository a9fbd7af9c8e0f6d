package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its `validate` tags and converts
// failures into a ValidationError the middleware can render.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{}
	for _, fe := range validationErrors {
		out.Errors = append(out.Errors, FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	// Field() reports the Go name; the wire uses lowerCamel / snake via
	// json tags, so lowercase the first rune as a close-enough default.
	name := fe.Field()
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "gt":
		return fmt.Sprintf("%s is required", fieldName(fe))
	case "email":
		return "Valid email is required"
	case "datetime":
		return "Valid date is required"
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe))
	}
}
