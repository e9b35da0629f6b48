package dto

import (
	"strings"

	"csms_backend/internals/features/users/teachers/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TeacherCreateDTO struct {
	Name         string    `json:"name" validate:"required"`
	TeacherID    string    `json:"teacherId" validate:"required"`
	Email        string    `json:"email" validate:"required"`
	Password     string    `json:"password" validate:"required"`
	DepartmentID uuid.UUID `json:"departmentId" validate:"required"`
	Phone        string    `json:"phone,omitempty"`
	Subjects     []string  `json:"subjects,omitempty"`
	Experience   *int      `json:"experience,omitempty" validate:"omitempty,min=0"`
	Designation  string    `json:"designation,omitempty"`
}

// TeacherUpdateDTO: password & teacherId tidak bisa diubah lewat PUT.
type TeacherUpdateDTO struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Subjects     *[]string  `json:"subjects,omitempty"`
	Experience   *int       `json:"experience,omitempty" validate:"omitempty,min=0"`
	Designation  *string    `json:"designation,omitempty"`
}

type TeacherFilterDTO struct {
	DepartmentID string `query:"departmentId"`
}

func (p *TeacherCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.TeacherID = strings.TrimSpace(p.TeacherID)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Subjects = cleanSubjects(p.Subjects)
}

func (p *TeacherCreateDTO) ToModel(passwordHash string) model.TeacherModel {
	return model.TeacherModel{
		Name:         p.Name,
		TeacherID:    p.TeacherID,
		Email:        p.Email,
		Password:     passwordHash,
		DepartmentID: p.DepartmentID,
		Phone:        strings.TrimSpace(p.Phone),
		Subjects:     datatypes.JSONSlice[string](p.Subjects),
		Experience:   p.Experience,
		Designation:  strings.TrimSpace(p.Designation),
	}
}

func (u *TeacherUpdateDTO) Normalize() {
	if u.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*u.Email))
		u.Email = &v
	}
}

var UpdatableColumns = []string{"Name", "Email", "DepartmentID", "Phone", "Subjects", "Experience", "Designation"}

func (u *TeacherUpdateDTO) ApplyUpdates(ent *model.TeacherModel) {
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		ent.Name = strings.TrimSpace(*u.Name)
	}
	if u.Email != nil && *u.Email != "" {
		ent.Email = *u.Email
	}
	if u.DepartmentID != nil && *u.DepartmentID != uuid.Nil {
		ent.DepartmentID = *u.DepartmentID
	}
	if u.Phone != nil {
		ent.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Subjects != nil {
		ent.Subjects = datatypes.JSONSlice[string](cleanSubjects(*u.Subjects))
	}
	if u.Experience != nil {
		ent.Experience = u.Experience
	}
	if u.Designation != nil {
		ent.Designation = strings.TrimSpace(*u.Designation)
	}
}

func cleanSubjects(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
