package service

import (
	"context"
	"fmt"

	"csms_backend/internals/constants"
	departmentModel "csms_backend/internals/features/academics/departments/model"
	studentModel "csms_backend/internals/features/users/students/model"
	teacherModel "csms_backend/internals/features/users/teachers/model"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalStudents    int64 `json:"totalStudents"`
	TotalTeachers    int64 `json:"totalTeachers"`
	TotalDepartments int64 `json:"totalDepartments"`
	AtRiskStudents   int64 `json:"atRiskStudents"`
}

// Dashboard: totalStudents hanya yang Active; atRisk dihitung tanpa melihat status.
func Dashboard(ctx context.Context, db *gorm.DB) (DashboardStats, error) {
	var st DashboardStats
	q := db.WithContext(ctx)

	if err := q.Model(&studentModel.StudentModel{}).
		Where("status = ?", constants.StudentStatusActive).
		Count(&st.TotalStudents).Error; err != nil {
		return st, fmt.Errorf("count students: %w", err)
	}
	if err := q.Model(&teacherModel.TeacherModel{}).Count(&st.TotalTeachers).Error; err != nil {
		return st, fmt.Errorf("count teachers: %w", err)
	}
	if err := q.Model(&departmentModel.DepartmentModel{}).Count(&st.TotalDepartments).Error; err != nil {
		return st, fmt.Errorf("count departments: %w", err)
	}
	if err := q.Model(&studentModel.StudentModel{}).
		Where("at_risk = ?", true).
		Count(&st.AtRiskStudents).Error; err != nil {
		return st, fmt.Errorf("count at-risk students: %w", err)
	}
	return st, nil
}
