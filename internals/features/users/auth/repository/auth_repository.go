package repository

import (
	"context"
	"fmt"
	"time"

	"csms_backend/internals/constants"
	adminModel "csms_backend/internals/features/users/admins/model"
	studentModel "csms_backend/internals/features/users/students/model"
	teacherModel "csms_backend/internals/features/users/teachers/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account adalah baris credential dari tabel sesuai role,
// plus record lengkap (tanpa password di JSON) untuk response.
type Account struct {
	ID       uuid.UUID
	Email    string
	Password string
	Role     constants.Role
	Record   any
}

func tableFor(role constants.Role) (string, error) {
	switch role {
	case constants.RoleAdmin:
		return "admins", nil
	case constants.RoleTeacher:
		return "teachers", nil
	case constants.RoleStudent:
		return "students", nil
	}
	return "", fmt.Errorf("unknown role %q", role)
}

/* ====================== LOOKUP ====================== */

func FindAccountByEmail(ctx context.Context, db *gorm.DB, role constants.Role, email string) (*Account, error) {
	return findAccount(ctx, db, role, "email = ?", email)
}

func FindAccountByID(ctx context.Context, db *gorm.DB, role constants.Role, id uuid.UUID) (*Account, error) {
	return findAccount(ctx, db, role, "id = ?", id)
}

func findAccount(ctx context.Context, db *gorm.DB, role constants.Role, where string, arg any) (*Account, error) {
	q := db.WithContext(ctx)
	switch role {
	case constants.RoleAdmin:
		var m adminModel.AdminModel
		if err := q.Where(where, arg).First(&m).Error; err != nil {
			return nil, err
		}
		return &Account{ID: m.ID, Email: m.Email, Password: m.Password, Role: role, Record: &m}, nil

	case constants.RoleTeacher:
		var m teacherModel.TeacherModel
		if err := q.Preload("Department").Where(where, arg).First(&m).Error; err != nil {
			return nil, err
		}
		return &Account{ID: m.ID, Email: m.Email, Password: m.Password, Role: role, Record: &m}, nil

	case constants.RoleStudent:
		var m studentModel.StudentModel
		if err := q.Preload("Department").Preload("Section").Where(where, arg).First(&m).Error; err != nil {
			return nil, err
		}
		return &Account{ID: m.ID, Email: m.Email, Password: m.Password, Role: role, Record: &m}, nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}

// TouchLastLogin update kolom last_login tanpa menyentuh updated_at.
func TouchLastLogin(ctx context.Context, db *gorm.DB, acc *Account, at time.Time) error {
	table, err := tableFor(acc.Role)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Table(table).Where("id = ?", acc.ID).
		UpdateColumn("last_login", at).Error; err != nil {
		return err
	}
	switch r := acc.Record.(type) {
	case *adminModel.AdminModel:
		r.LastLogin = &at
	case *teacherModel.TeacherModel:
		r.LastLogin = &at
	case *studentModel.StudentModel:
		r.LastLogin = &at
	}
	return nil
}

/* ====================== ADMIN ====================== */

func AdminExists(ctx context.Context, db *gorm.DB, email, adminID string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&adminModel.AdminModel{}).
		Where("email = ? OR admin_id = ?", email, adminID).
		Count(&n).Error
	return n > 0, err
}

func CreateAdmin(ctx context.Context, db *gorm.DB, m *adminModel.AdminModel) error {
	return db.WithContext(ctx).Create(m).Error
}
