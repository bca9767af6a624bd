// Package validation checks form input before it is sent to the backend.
// Struct fields carry `validate` rules and a `label` used in messages, so
// messages read the way the login and registration forms display them.
package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"farmwatch.app/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})
	return v
}

// FieldError describes one failed rule on one form field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// Fields runs the struct rules and returns one entry per failed field,
// in declaration order. A nil result means the form is valid.
func Fields(form interface{}) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	result := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		result = append(result, FieldError{
			Field:   fe.StructField(),
			Message: message(fe),
		})
	}
	return result
}

// Struct validates form and returns a ValidationError carrying the first
// failed field's message, or nil.
func Struct(form interface{}) error {
	fieldErrs := Fields(form)
	if len(fieldErrs) == 0 {
		return nil
	}
	return errors.NewValidationError(fieldErrs[0].Message)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
