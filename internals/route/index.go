// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"csms_backend/internals/configs"
	departmentRoute "csms_backend/internals/features/academics/departments/route"
	sectionRoute "csms_backend/internals/features/academics/sections/route"
	notificationRoute "csms_backend/internals/features/notifications/route"
	achievementRoute "csms_backend/internals/features/records/achievements/route"
	attendanceRoute "csms_backend/internals/features/records/attendance/route"
	remarkRoute "csms_backend/internals/features/records/remarks/route"
	resultRoute "csms_backend/internals/features/records/results/route"
	adminRoute "csms_backend/internals/features/users/admins/route"
	authRoute "csms_backend/internals/features/users/auth/route"
	authService "csms_backend/internals/features/users/auth/service"
	studentRoute "csms_backend/internals/features/users/students/route"
	teacherRoute "csms_backend/internals/features/users/teachers/route"
	ossHelper "csms_backend/internals/helpers/oss"
	middlewares "csms_backend/internals/middlewares"
	authMiddleware "csms_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// Deps dibangun di main lalu dioper ke semua route.
type Deps struct {
	Config *configs.Config
	Tokens *authService.TokenService
	Blob   ossHelper.BlobService
	Limits middlewares.RateLimits
}

func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	startTime = time.Now()

	api := app.Group("/api", deps.Limits.Global())
	BaseRoutes(api, db, deps.Config)

	protect := authMiddleware.AuthMiddleware(deps.Tokens)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db, deps.Tokens, deps.Limits.Login(), protect)

	log.Println("[INFO] Setting up AdminRoutes...")
	adminRoute.AdminRoutes(api, db, deps.Blob, protect)

	log.Println("[INFO] Setting up academic routes...")
	departmentRoute.DepartmentRoutes(api, db, protect)
	sectionRoute.SectionRoutes(api, db, protect)

	log.Println("[INFO] Setting up user routes...")
	studentRoute.StudentRoutes(api, db, deps.Blob, protect)
	teacherRoute.TeacherRoutes(api, db, deps.Blob, protect)

	log.Println("[INFO] Setting up record routes...")
	attendanceRoute.AttendanceRoutes(api, db, protect)
	resultRoute.ResultRoutes(api, db, protect)
	remarkRoute.RemarkRoutes(api, db, protect)
	achievementRoute.AchievementRoutes(api, db, deps.Blob, protect)

	log.Println("[INFO] Setting up NotificationRoutes...")
	notificationRoute.NotificationRoutes(api, db, protect)
}
