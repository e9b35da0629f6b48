package route

import (
	"csms_backend/internals/features/records/remarks/controller"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/remarks
func RemarkRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewRemarkController(db)
	staff := authMiddleware.TeacherOrAdmin("manage remarks")

	g := api.Group("/remarks", protect)
	g.Post("/", staff, ctl.Create)
	g.Get("/student/:studentId", authMiddleware.AnyRole(), ctl.ListByStudent)
	g.Put("/:id", staff, ctl.Update)
	g.Delete("/:id", staff, ctl.Delete)
}
