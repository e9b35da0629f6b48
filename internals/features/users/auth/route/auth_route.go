package route

import (
	"csms_backend/internals/features/users/auth/controller"
	"csms_backend/internals/features/users/auth/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes: login & register publik (dengan limiter), /me butuh token.
func AuthRoutes(api fiber.Router, db *gorm.DB, tokens *service.TokenService, loginLimiter, protect fiber.Handler) {
	ctrl := controller.NewAuthController(service.NewAuthService(db, tokens))

	auth := api.Group("/auth")
	auth.Post("/login", loginLimiter, ctrl.Login)
	auth.Post("/register-admin", loginLimiter, ctrl.RegisterAdmin)
	auth.Get("/me", protect, ctrl.Me)
}
