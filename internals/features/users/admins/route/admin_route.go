package route

import (
	"csms_backend/internals/features/users/admins/controller"
	studentController "csms_backend/internals/features/users/students/controller"
	ossHelper "csms_backend/internals/helpers/oss"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/admin (admin only)
func AdminRoutes(api fiber.Router, db *gorm.DB, blob ossHelper.BlobService, protect fiber.Handler) {
	ctl := controller.NewAdminController(db)
	students := studentController.NewStudentController(db, blob)

	g := api.Group("/admin", protect, authMiddleware.OnlyAdmin("the admin panel"))
	g.Get("/dashboard", ctl.Dashboard)
	g.Get("/search-student", ctl.SearchStudent)
	g.Get("/at-risk-students", ctl.AtRiskStudents)
	g.Get("/students/export", students.Export)
}
