package dto

import (
	"strings"

	"csms_backend/internals/features/records/results/model"

	"github.com/google/uuid"
)

type ResultCreateDTO struct {
	StudentID uuid.UUID `json:"studentId" validate:"required"`
	Semester  int       `json:"semester" validate:"required,min=1"`
	Subject   string    `json:"subject" validate:"required"`
	Marks     *float64  `json:"marks" validate:"required,min=0"`
	MaxMarks  *float64  `json:"maxMarks,omitempty" validate:"omitempty,gt=0"`
	Grade     string    `json:"grade,omitempty"`
	ExamType  string    `json:"examType,omitempty" validate:"omitempty,oneof=Internal External Assignment"`
}

type ResultUpdateDTO struct {
	Semester *int     `json:"semester,omitempty" validate:"omitempty,min=1"`
	Subject  *string  `json:"subject,omitempty"`
	Marks    *float64 `json:"marks,omitempty" validate:"omitempty,min=0"`
	MaxMarks *float64 `json:"maxMarks,omitempty" validate:"omitempty,gt=0"`
	Grade    *string  `json:"grade,omitempty"`
	ExamType *string  `json:"examType,omitempty" validate:"omitempty,oneof=Internal External Assignment"`
}

type ResultFilterDTO struct {
	Semester int    `query:"semester"`
	ExamType string `query:"examType"`
}

// ToModel: marks pointer supaya nilai 0 tetap lolos `required`.
func (p *ResultCreateDTO) ToModel(createdBy uuid.UUID) model.ResultModel {
	m := model.ResultModel{
		StudentID: p.StudentID,
		Semester:  p.Semester,
		Subject:   strings.TrimSpace(p.Subject),
		Marks:     *p.Marks,
		Grade:     strings.TrimSpace(p.Grade),
		ExamType:  p.ExamType,
		CreatedBy: &createdBy,
	}
	if p.MaxMarks != nil {
		m.MaxMarks = *p.MaxMarks
	}
	return m
}

var UpdatableColumns = []string{"Semester", "Subject", "Marks", "MaxMarks", "Grade", "ExamType"}

func (u *ResultUpdateDTO) ApplyUpdates(ent *model.ResultModel) {
	if u.Semester != nil {
		ent.Semester = *u.Semester
	}
	if u.Subject != nil && strings.TrimSpace(*u.Subject) != "" {
		ent.Subject = strings.TrimSpace(*u.Subject)
	}
	if u.Marks != nil {
		ent.Marks = *u.Marks
	}
	if u.MaxMarks != nil {
		ent.MaxMarks = *u.MaxMarks
	}
	if u.Grade != nil {
		ent.Grade = strings.TrimSpace(*u.Grade)
	}
	if u.ExamType != nil && *u.ExamType != "" {
		ent.ExamType = *u.ExamType
	}
}
