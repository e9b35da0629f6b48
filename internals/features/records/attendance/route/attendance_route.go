package route

import (
	"csms_backend/internals/features/records/attendance/controller"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Base path: /api/attendance
func AttendanceRoutes(api fiber.Router, db *gorm.DB, protect fiber.Handler) {
	ctl := controller.NewAttendanceController(db)
	staff := authMiddleware.TeacherOrAdmin("mark attendance")

	g := api.Group("/attendance", protect)
	g.Post("/", staff, ctl.Create)
	g.Get("/student/:studentId", authMiddleware.AnyRole(), ctl.ListByStudent)
	g.Put("/:id", staff, ctl.Update)
	g.Delete("/:id", staff, ctl.Delete)
}
