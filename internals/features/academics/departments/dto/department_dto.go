package dto

import (
	"strings"

	"csms_backend/internals/features/academics/departments/model"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

type DepartmentCreateDTO struct {
	Name  string     `json:"name" validate:"required"`
	Code  string     `json:"code" validate:"required"`
	HodID *uuid.UUID `json:"hodId,omitempty"`
}

type DepartmentUpdateDTO struct {
	Name  *string    `json:"name,omitempty"`
	Code  *string    `json:"code,omitempty"`
	HodID *uuid.UUID `json:"hodId,omitempty"`
}

// =======================
// Helpers
// =======================

func (p *DepartmentCreateDTO) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
}

func (p *DepartmentCreateDTO) ToModel() model.DepartmentModel {
	return model.DepartmentModel{
		Name:  p.Name,
		Code:  p.Code,
		HodID: p.HodID,
	}
}

func (u *DepartmentUpdateDTO) Normalize() {
	if u.Name != nil {
		v := strings.TrimSpace(*u.Name)
		u.Name = &v
	}
	if u.Code != nil {
		v := strings.ToUpper(strings.TrimSpace(*u.Code))
		u.Code = &v
	}
}

// ApplyUpdates: field kosong tidak menimpa nilai lama.
// hodId berisi UUID nol berarti HOD dilepas.
func (u *DepartmentUpdateDTO) ApplyUpdates(ent *model.DepartmentModel) {
	if u.Name != nil && *u.Name != "" {
		ent.Name = *u.Name
	}
	if u.Code != nil && *u.Code != "" {
		ent.Code = *u.Code
	}
	if u.HodID != nil {
		if *u.HodID == uuid.Nil {
			ent.HodID = nil
		} else {
			ent.HodID = u.HodID
		}
	}
}
