package dto

import (
	"strings"

	"csms_backend/internals/features/records/attendance/model"
	"csms_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
)

type AttendanceCreateDTO struct {
	StudentID uuid.UUID   `json:"studentId" validate:"required"`
	Subject   string      `json:"subject" validate:"required"`
	Date      dbtime.Date `json:"date" validate:"required"`
	Status    string      `json:"status" validate:"required,oneof=Present Absent Late"`
}

type AttendanceUpdateDTO struct {
	Subject *string      `json:"subject,omitempty"`
	Date    *dbtime.Date `json:"date,omitempty"`
	Status  *string      `json:"status,omitempty" validate:"omitempty,oneof=Present Absent Late"`
}

type AttendanceFilterDTO struct {
	Subject   string `query:"subject"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

func (p *AttendanceCreateDTO) ToModel(markedBy uuid.UUID) model.AttendanceModel {
	return model.AttendanceModel{
		StudentID: p.StudentID,
		Subject:   strings.TrimSpace(p.Subject),
		Date:      p.Date.Time,
		Status:    p.Status,
		MarkedBy:  &markedBy,
	}
}

var UpdatableColumns = []string{"Subject", "Date", "Status"}

func (u *AttendanceUpdateDTO) ApplyUpdates(ent *model.AttendanceModel) {
	if u.Subject != nil && strings.TrimSpace(*u.Subject) != "" {
		ent.Subject = strings.TrimSpace(*u.Subject)
	}
	if t := u.Date.Ptr(); t != nil {
		ent.Date = *t
	}
	if u.Status != nil && *u.Status != "" {
		ent.Status = *u.Status
	}
}
