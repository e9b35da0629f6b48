package route

import (
	"csms_backend/internals/features/users/students/controller"
	ossHelper "csms_backend/internals/helpers/oss"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/students
func StudentRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService, protect fiber.Handler) {
	ctl := controller.NewStudentController(db, blob)
	staff := authMiddleware.TeacherOrAdmin("manage students")

	g := api.Group("/students", protect)
	g.Post("/", staff, ctl.Create)
	g.Post("/import", staff, ctl.Import)
	g.Get("/", authMiddleware.AnyRole(), ctl.List)
	g.Get("/:id", authMiddleware.AnyRole(), ctl.GetByID)
	g.Put("/:id", staff, ctl.Update)
	g.Post("/:id/upload-image", staff, ctl.UploadImage)
	g.Delete("/:id", authMiddleware.OnlyAdmin("deactivate students"), ctl.Delete)
}
