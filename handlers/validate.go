package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "gte", "gt":
		return fe.Field() + " must be a positive number"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fe.Field() + " is invalid"
	}
}

// badRequestErrors translates validator output into the API's 400 body,
// a field-level error array rather than a single message.
func badRequestErrors(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	fieldErrs := []FieldError{}
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
	} else {
		fieldErrs = append(fieldErrs, FieldError{Field: "", Message: err.Error()})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrs})
}
