// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS dari daftar origin config.
func CorsMiddleware(origins []string) fiber.Handler {
	allowCredentials := true
	joined := strings.Join(origins, ", ")
	if joined == "" || joined == "*" {
		// fiber menolak wildcard + credentials
		joined = "*"
		allowCredentials = false
	}
	return cors.New(cors.Config{
		AllowOrigins:     joined,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders:    "X-Request-ID, Content-Disposition",
		AllowCredentials: allowCredentials,
	})
}
