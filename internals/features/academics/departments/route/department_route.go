package route

import (
	"csms_backend/internals/features/academics/departments/controller"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/departments
func DepartmentRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewDepartmentController(db)
	adminOnly := authMiddleware.OnlyAdmin("manage departments")

	g := api.Group("/departments", protect)
	g.Get("/", authMiddleware.AnyRole(), ctl.List)
	g.Get("/:id", authMiddleware.AnyRole(), ctl.GetByID)
	g.Post("/", adminOnly, ctl.Create)
	g.Put("/:id", adminOnly, ctl.Update)
	g.Delete("/:id", adminOnly, ctl.Delete)
}
