// Package validator adapts go-playground/validator to Echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks i against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Describe renders a validation failure as a single client-facing message.
func Describe(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Invalid request"
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Tag() {
	case "required":
		return "Missing " + fieldErr.Field()
	case "eth_addr":
		return "Invalid address " + toString(fieldErr.Value())
	default:
		return "Invalid " + fieldErr.Field()
	}
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return ""
}

var _ echo.Validator = (*CustomValidator)(nil)
