package database

import (
	"fmt"
	"log"

	departmentModel "csms_backend/internals/features/academics/departments/model"
	sectionModel "csms_backend/internals/features/academics/sections/model"
	notificationModel "csms_backend/internals/features/notifications/model"
	achievementModel "csms_backend/internals/features/records/achievements/model"
	attendanceModel "csms_backend/internals/features/records/attendance/model"
	remarkModel "csms_backend/internals/features/records/remarks/model"
	resultModel "csms_backend/internals/features/records/results/model"
	adminModel "csms_backend/internals/features/users/admins/model"
	studentModel "csms_backend/internals/features/users/students/model"
	teacherModel "csms_backend/internals/features/users/teachers/model"

	"gorm.io/gorm"
)

// Models adalah daftar tabel yang dikelola aplikasi, urut dari yang paling dasar.
func Models() []any {
	return []any{
		&adminModel.AdminModel{},
		&departmentModel.DepartmentModel{},
		&teacherModel.TeacherModel{},
		&sectionModel.SectionModel{},
		&studentModel.StudentModel{},
		&attendanceModel.AttendanceModel{},
		&resultModel.ResultModel{},
		&remarkModel.RemarkModel{},
		&achievementModel.AchievementModel{},
		&notificationModel.NotificationModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Printf("[INFO] migrated %d tables", len(Models()))
	return nil
}
