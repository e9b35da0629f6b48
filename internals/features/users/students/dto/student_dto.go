package dto

import (
	"strings"

	"csms_backend/internals/features/users/students/model"
	"csms_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

type StudentCreateDTO struct {
	Name          string       `json:"name" validate:"required"`
	RollNumber    string       `json:"rollNumber" validate:"required"`
	Email         string       `json:"email" validate:"required"`
	Password      string       `json:"password" validate:"required"`
	DepartmentID  uuid.UUID    `json:"departmentId" validate:"required"`
	SectionID     *uuid.UUID   `json:"sectionId,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	GuardianName  string       `json:"guardianName,omitempty"`
	GuardianPhone string       `json:"guardianPhone,omitempty"`
	DateOfBirth   *dbtime.Date `json:"dateOfBirth,omitempty"`
	Address       string       `json:"address,omitempty"`
}

// StudentUpdateDTO: password & rollNumber sengaja tidak ada (tidak bisa diubah lewat PUT).
type StudentUpdateDTO struct {
	Name          *string      `json:"name,omitempty"`
	Email         *string      `json:"email,omitempty"`
	DepartmentID  *uuid.UUID   `json:"departmentId,omitempty"`
	SectionID     *uuid.UUID   `json:"sectionId,omitempty"`
	Phone         *string      `json:"phone,omitempty"`
	GuardianName  *string      `json:"guardianName,omitempty"`
	GuardianPhone *string      `json:"guardianPhone,omitempty"`
	DateOfBirth   *dbtime.Date `json:"dateOfBirth,omitempty"`
	Address       *string      `json:"address,omitempty"`
	BacklogCount  *int         `json:"backlogCount,omitempty" validate:"omitempty,min=0"`
	AtRisk        *bool        `json:"atRisk,omitempty"`
	Status        *string      `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

type StudentFilterDTO struct {
	DepartmentID string `query:"departmentId"`
	SectionID    string `query:"sectionId"`
	Status       string `query:"status"`
	AtRisk       string `query:"atRisk"`
}

type UploadImageDTO struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
}

// =======================
// Helpers
// =======================

func (p *StudentCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.RollNumber = strings.TrimSpace(p.RollNumber)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Phone = strings.TrimSpace(p.Phone)
}

// ToModel: password sudah di-hash oleh caller.
func (p *StudentCreateDTO) ToModel(passwordHash string) model.StudentModel {
	return model.StudentModel{
		Name:          p.Name,
		RollNumber:    p.RollNumber,
		Email:         p.Email,
		Password:      passwordHash,
		DepartmentID:  p.DepartmentID,
		SectionID:     p.SectionID,
		Phone:         p.Phone,
		GuardianName:  strings.TrimSpace(p.GuardianName),
		GuardianPhone: strings.TrimSpace(p.GuardianPhone),
		DateOfBirth:   p.DateOfBirth.Ptr(),
		Address:       strings.TrimSpace(p.Address),
	}
}

func (u *StudentUpdateDTO) Normalize() {
	if u.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*u.Email))
		u.Email = &v
	}
}

// Kolom yang boleh di-update lewat PUT.
var UpdatableColumns = []string{
	"Name", "Email", "DepartmentID", "SectionID", "Phone", "GuardianName",
	"GuardianPhone", "DateOfBirth", "Address", "BacklogCount", "AtRisk", "Status",
}

func (u *StudentUpdateDTO) ApplyUpdates(ent *model.StudentModel) {
	setStr := func(dst *string, v *string) {
		if v != nil {
			if s := strings.TrimSpace(*v); s != "" {
				*dst = s
			}
		}
	}
	setStr(&ent.Name, u.Name)
	setStr(&ent.Email, u.Email)
	if u.DepartmentID != nil && *u.DepartmentID != uuid.Nil {
		ent.DepartmentID = *u.DepartmentID
	}
	if u.SectionID != nil {
		ent.SectionID = u.SectionID
		if *u.SectionID == uuid.Nil {
			ent.SectionID = nil
		}
	}
	if u.Phone != nil {
		ent.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.GuardianName != nil {
		ent.GuardianName = strings.TrimSpace(*u.GuardianName)
	}
	if u.GuardianPhone != nil {
		ent.GuardianPhone = strings.TrimSpace(*u.GuardianPhone)
	}
	if u.DateOfBirth != nil {
		ent.DateOfBirth = u.DateOfBirth.Ptr()
	}
	if u.Address != nil {
		ent.Address = strings.TrimSpace(*u.Address)
	}
	if u.BacklogCount != nil {
		ent.BacklogCount = *u.BacklogCount
	}
	if u.AtRisk != nil {
		ent.AtRisk = *u.AtRisk
	}
	setStr(&ent.Status, u.Status)
}
