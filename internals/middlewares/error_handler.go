package middlewares

import (
	"errors"
	"log"

	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler mengubah semua error dari handler menjadi envelope
// {success:false, message, error_code}. Error validasi ikut membawa "errors"
// per field. Error non-fiber dan 500 → pesan generik; 502/503 tetap membawa
// pesan dari handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ve *helper.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonValidationError(c, ve.Message, ve.Fields)
	}

	code := fiber.StatusInternalServerError
	msg := "Server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}
	if code == fiber.StatusInternalServerError {
		msg = "Server error"
	}
	return helper.JsonError(c, code, msg)
}
