package route

import (
	"csms_backend/internals/features/records/results/controller"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/results
func ResultRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewResultController(db)
	staff := authMiddleware.TeacherOrAdmin("manage results")

	g := api.Group("/results", protect)
	g.Post("/", staff, ctl.Create)
	g.Get("/student/:studentId", authMiddleware.AnyRole(), ctl.ListByStudent)
	g.Put("/:id", staff, ctl.Update)
	g.Delete("/:id", staff, ctl.Delete)
}
