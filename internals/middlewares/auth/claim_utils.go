// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	authService "csms_backend/internals/features/users/auth/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

var (
	errNoToken     = errors.New("no token provided")
	errTokenFormat = errors.New("invalid token format")
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errNoToken
	}

	// toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errTokenFormat
	}

	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errNoToken
	}
	return tok, nil
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, authService.ErrTokenMissingExp):
		return "Not authorized, token expired"
	default:
		return "Not authorized, token failed"
	}
}
