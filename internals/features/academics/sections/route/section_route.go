package route

import (
	"csms_backend/internals/features/academics/sections/controller"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/sections
func SectionRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewSectionController(db)
	adminOnly := authMiddleware.OnlyAdmin("manage sections")

	g := api.Group("/sections", protect)
	g.Get("/", authMiddleware.AnyRole(), ctl.List)
	g.Get("/:id", authMiddleware.AnyRole(), ctl.GetByID)
	g.Post("/", adminOnly, ctl.Create)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
}
