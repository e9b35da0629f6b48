package route

import (
	"csms_backend/internals/features/users/teachers/controller"
	ossHelper "csms_backend/internals/helpers/oss"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/teachers (admin only)
func TeacherRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService, protect fiber.Handler) {
	ctl := controller.NewTeacherController(db, blob)

	g := api.Group("/teachers", protect, authMiddleware.OnlyAdmin("manage teachers"))
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Put("/:id", ctl.Update)
	g.Post("/:id/upload-image", ctl.UploadImage)
	g.Delete("/:id", ctl.Delete)
}
