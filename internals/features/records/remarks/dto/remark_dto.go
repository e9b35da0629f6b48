package dto

import (
	"strings"

	"csms_backend/internals/features/records/remarks/model"

	"github.com/google/uuid"
)

type RemarkCreateDTO struct {
	StudentID uuid.UUID `json:"studentId" validate:"required"`
	Remark    string    `json:"remark" validate:"required"`
	Type      string    `json:"type,omitempty" validate:"omitempty,oneof=positive negative neutral"`
	Category  string    `json:"category,omitempty" validate:"omitempty,oneof=Academic Behavioral Attendance Improvement"`
}

type RemarkUpdateDTO struct {
	Remark   *string `json:"remark,omitempty"`
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=positive negative neutral"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=Academic Behavioral Attendance Improvement"`
}

type RemarkFilterDTO struct {
	Type     string `query:"type"`
	Category string `query:"category"`
}

func (p *RemarkCreateDTO) ToModel(teacherID uuid.UUID) model.RemarkModel {
	return model.RemarkModel{
		StudentID: p.StudentID,
		TeacherID: &teacherID,
		Remark:    strings.TrimSpace(p.Remark),
		Type:      p.Type,
		Category:  p.Category,
	}
}

var UpdatableColumns = []string{"Remark", "Type", "Category"}

func (u *RemarkUpdateDTO) ApplyUpdates(ent *model.RemarkModel) {
	if u.Remark != nil && strings.TrimSpace(*u.Remark) != "" {
		ent.Remark = strings.TrimSpace(*u.Remark)
	}
	if u.Type != nil && *u.Type != "" {
		ent.Type = *u.Type
	}
	if u.Category != nil && *u.Category != "" {
		ent.Category = *u.Category
	}
}
