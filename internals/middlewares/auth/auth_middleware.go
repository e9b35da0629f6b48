// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	authService "csms_backend/internals/features/users/auth/service"
	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware: Unauthenticated → TokenPresent → Verified.
// Token self-contained, tidak ada akses DB di sini.
func AuthMiddleware(tokens *authService.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil bearer token
		raw, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authorized, no token")
		}

		// 2) Verifikasi signature + exp
		id, err := tokens.Parse(raw)
		if err != nil {
			log.Printf("[WARN] token rejected: %v", err)
			return fiber.NewError(fiber.StatusUnauthorized, tokenErrorMessage(err))
		}

		// 3) Tempel identity ke request
		helper.SetIdentity(c, id)
		return c.Next()
	}
}
