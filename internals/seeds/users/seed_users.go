package users

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"csms_backend/internals/constants"
	departmentModel "csms_backend/internals/features/academics/departments/model"
	sectionModel "csms_backend/internals/features/academics/sections/model"
	adminModel "csms_backend/internals/features/users/admins/model"
	authService "csms_backend/internals/features/users/auth/service"
	studentModel "csms_backend/internals/features/users/students/model"
	teacherModel "csms_backend/internals/features/users/teachers/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminSeed struct {
	Name     string `json:"name"`
	AdminID  string `json:"admin_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type TeacherSeed struct {
	Name           string   `json:"name"`
	TeacherID      string   `json:"teacher_id"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	DepartmentCode string   `json:"department_code"`
	Subjects       []string `json:"subjects"`
	Experience     *int     `json:"experience"`
	Designation    string   `json:"designation"`
	Sections       []string `json:"sections"`
}

type StudentSeed struct {
	Name           string `json:"name"`
	RollNumber     string `json:"roll_number"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	DepartmentCode string `json:"department_code"`
	Section        string `json:"section"`
}

type UsersSeed struct {
	Admins   []AdminSeed   `json:"admins"`
	Teachers []TeacherSeed `json:"teachers"`
	Students []StudentSeed `json:"students"`
}

// SeedUsersFromJSON: department & section harus sudah di-seed.
// User yang email-nya sudah ada dilewati.
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var seed UsersSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	for _, a := range seed.Admins {
		if err := seedAdmin(db, a); err != nil {
			return err
		}
	}
	for _, t := range seed.Teachers {
		if err := seedTeacher(db, t); err != nil {
			return err
		}
	}
	for _, s := range seed.Students {
		if err := seedStudent(db, s); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB, a AdminSeed) error {
	email := strings.ToLower(a.Email)
	if exists, err := emailExists(db, &adminModel.AdminModel{}, email); err != nil || exists {
		return err
	}
	hash, err := authService.HashPassword(a.Password)
	if err != nil {
		return err
	}
	role := a.Role
	if role == "" {
		role = constants.AdminRoleSuper
	}
	m := adminModel.AdminModel{Name: a.Name, AdminID: a.AdminID, Email: email, Password: hash, Role: role}
	if err := db.Create(&m).Error; err != nil {
		return fmt.Errorf("insert admin %s: %w", email, err)
	}
	log.Printf("✅ Berhasil insert admin %s", email)
	return nil
}

func seedTeacher(db *gorm.DB, t TeacherSeed) error {
	email := strings.ToLower(t.Email)
	if exists, err := emailExists(db, &teacherModel.TeacherModel{}, email); err != nil || exists {
		return err
	}
	deptID, err := departmentIDByCode(db, t.DepartmentCode)
	if err != nil {
		return err
	}
	hash, err := authService.HashPassword(t.Password)
	if err != nil {
		return err
	}
	m := teacherModel.TeacherModel{
		Name:         t.Name,
		TeacherID:    t.TeacherID,
		Email:        email,
		Password:     hash,
		DepartmentID: deptID,
		Subjects:     datatypes.JSONSlice[string](t.Subjects),
		Experience:   t.Experience,
		Designation:  t.Designation,
	}
	if err := db.Create(&m).Error; err != nil {
		return fmt.Errorf("insert teacher %s: %w", email, err)
	}

	// assignment section cukup lewat sections.teacher_id
	if len(t.Sections) > 0 {
		if err := db.Model(&sectionModel.SectionModel{}).
			Where("department_id = ? AND name IN ?", deptID, t.Sections).
			Update("teacher_id", m.ID).Error; err != nil {
			return fmt.Errorf("assign sections to %s: %w", email, err)
		}
	}
	log.Printf("✅ Berhasil insert teacher %s", email)
	return nil
}

func seedStudent(db *gorm.DB, s StudentSeed) error {
	email := strings.ToLower(s.Email)
	if exists, err := emailExists(db, &studentModel.StudentModel{}, email); err != nil || exists {
		return err
	}
	deptID, err := departmentIDByCode(db, s.DepartmentCode)
	if err != nil {
		return err
	}
	var sectionID *uuid.UUID
	if s.Section != "" {
		var sec sectionModel.SectionModel
		if err := db.Where("department_id = ? AND name = ?", deptID, s.Section).First(&sec).Error; err != nil {
			return fmt.Errorf("student %s: section %s: %w", email, s.Section, err)
		}
		sectionID = &sec.ID
	}
	hash, err := authService.HashPassword(s.Password)
	if err != nil {
		return err
	}
	m := studentModel.StudentModel{
		Name:         s.Name,
		RollNumber:   s.RollNumber,
		Email:        email,
		Password:     hash,
		DepartmentID: deptID,
		SectionID:    sectionID,
	}
	if err := db.Create(&m).Error; err != nil {
		return fmt.Errorf("insert student %s: %w", email, err)
	}
	log.Printf("✅ Berhasil insert student %s", email)
	return nil
}

func emailExists(db *gorm.DB, model any, email string) (bool, error) {
	var n int64
	if err := db.Model(model).Where("email = ?", email).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check %s: %w", email, err)
	}
	if n > 0 {
		log.Printf("ℹ️ %s sudah ada, lewati...", email)
	}
	return n > 0, nil
}

func departmentIDByCode(db *gorm.DB, code string) (uuid.UUID, error) {
	var d departmentModel.DepartmentModel
	if err := db.Select("id").Where("code = ?", strings.ToUpper(code)).First(&d).Error; err != nil {
		return uuid.Nil, fmt.Errorf("department %s: %w", code, err)
	}
	return d.ID, nil
}
