package seeds_test

import (
	"testing"

	departmentModel "csms_backend/internals/features/academics/departments/model"
	sectionModel "csms_backend/internals/features/academics/sections/model"
	adminModel "csms_backend/internals/features/users/admins/model"
	authService "csms_backend/internals/features/users/auth/service"
	studentModel "csms_backend/internals/features/users/students/model"
	teacherModel "csms_backend/internals/features/users/teachers/model"
	"csms_backend/internals/seeds"
	"csms_backend/internals/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	db := testkit.NewDB(t)

	// dua kali jalan, hasil tetap sama
	for i := 0; i < 2; i++ {
		require.NoError(t, seeds.RunAllSeeds(db, "data"))
	}

	assert.EqualValues(t, 3, count(t, db, &departmentModel.DepartmentModel{}))
	assert.EqualValues(t, 3, count(t, db, &sectionModel.SectionModel{}))
	assert.EqualValues(t, 1, count(t, db, &adminModel.AdminModel{}))
	assert.EqualValues(t, 1, count(t, db, &teacherModel.TeacherModel{}))
	assert.EqualValues(t, 3, count(t, db, &studentModel.StudentModel{}))

	var teacher teacherModel.TeacherModel
	require.NoError(t, db.Where("email = ?", "priya.raman@csms.local").First(&teacher).Error)
	assert.True(t, authService.CheckPassword(teacher.Password, "teacher123"))

	var sec sectionModel.SectionModel
	require.NoError(t, db.Where("name = ?", "CSE-A").First(&sec).Error)
	require.NotNil(t, sec.TeacherID)
	assert.Equal(t, teacher.ID, *sec.TeacherID)

	var student studentModel.StudentModel
	require.NoError(t, db.Where("roll_number = ?", "ECE2024001").First(&student).Error)
	require.NotNil(t, student.SectionID)
}

func TestRunAllSeedsMissingDir(t *testing.T) {
	db := testkit.NewDB(t)
	assert.Error(t, seeds.RunAllSeeds(db, t.TempDir()))
}
