package dto

import (
	"strings"

	"csms_backend/internals/features/academics/sections/model"

	"github.com/google/uuid"
)

type SectionCreateDTO struct {
	Name         string     `json:"name" validate:"required"`
	DepartmentID uuid.UUID  `json:"departmentId" validate:"required"`
	TeacherID    *uuid.UUID `json:"teacherId,omitempty"`
}

type SectionUpdateDTO struct {
	Name         *string    `json:"name,omitempty"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
	TeacherID    *uuid.UUID `json:"teacherId,omitempty"`
}

type SectionFilterDTO struct {
	DepartmentID string `query:"departmentId"`
}

func (p *SectionCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
}

func (p *SectionCreateDTO) ToModel() model.SectionModel {
	return model.SectionModel{
		Name:         p.Name,
		DepartmentID: p.DepartmentID,
		TeacherID:    p.TeacherID,
	}
}

func (u *SectionUpdateDTO) ApplyUpdates(ent *model.SectionModel) {
	if u.Name != nil {
		if v := strings.TrimSpace(*u.Name); v != "" {
			ent.Name = v
		}
	}
	if u.DepartmentID != nil && *u.DepartmentID != uuid.Nil {
		ent.DepartmentID = *u.DepartmentID
	}
	if u.TeacherID != nil {
		ent.TeacherID = u.TeacherID
		if *u.TeacherID == uuid.Nil {
			ent.TeacherID = nil
		}
	}
}
