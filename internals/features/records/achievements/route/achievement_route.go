package route

import (
	"csms_backend/internals/features/records/achievements/controller"
	ossHelper "csms_backend/internals/helpers/oss"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/achievements (semua role yang login)
func AchievementRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService, protect fiber.Handler) {
	ctl := controller.NewAchievementController(db, blob)

	g := api.Group("/achievements", protect, authMiddleware.AnyRole())
	g.Post("/", ctl.Create)
	g.Get("/student/:studentId", ctl.ListByStudent)
	g.Put("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}
