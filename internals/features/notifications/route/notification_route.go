package route

import (
	"csms_backend/internals/features/notifications/controller"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/notifications
func NotificationRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewNotificationController(db)
	admin := authMiddleware.OnlyAdmin("manage notifications")

	g := api.Group("/notifications", protect)
	g.Post("/", admin, ctl.Create)
	g.Get("/", authMiddleware.AnyRole(), ctl.List)
	g.Put("/:id", admin, ctl.Update)
	g.Delete("/:id", admin, ctl.Delete)
}
