package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseIDParam membaca UUID dari path param.
// Id yang formatnya salah diperlakukan sebagai server error (500),
// sama seperti cast error pada storage.
func ParseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	return id, nil
}

// ParseOptionalUUID untuk query/form opsional. String kosong → nil.
func ParseOptionalUUID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	return &id, nil
}

// BindAndValidate parse body JSON lalu jalankan validator.
// Gagal parse → 400; field wajib kosong → 400 dengan requiredMsg
// plus detail per field di "errors".
func BindAndValidate(c *fiber.Ctx, v *validator.Validate, dst any, requiredMsg string) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := v.Struct(dst); err != nil {
		return NewValidationError(err, requiredMsg)
	}
	return nil
}

// ValidationError dirender error handler lewat JsonValidationError.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError: error `required` memakai requiredMsg,
// error enum (`oneof`) menyebut field dan nilai yang diizinkan.
func NewValidationError(err error, requiredMsg string) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid input")
	}

	out := &ValidationError{Fields: make(map[string]string, len(ve))}
	for _, fe := range ve {
		if _, ok := out.Fields[fe.Field()]; !ok {
			out.Fields[fe.Field()] = fieldMessage(fe)
		}
		if fe.Tag() == "required" && requiredMsg != "" && out.Message == "" {
			out.Message = requiredMsg
		}
	}
	if out.Message == "" {
		out.Message = fieldMessage(ve[0])
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// NewValidator memakai nama field dari tag json supaya pesan error cocok dengan payload.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}
