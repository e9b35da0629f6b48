package dto

import (
	"strings"

	"csms_backend/internals/features/records/achievements/model"
	"csms_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
)

type AchievementCreateDTO struct {
	StudentID         uuid.UUID   `json:"studentId" validate:"required"`
	Title             string      `json:"title" validate:"required"`
	Description       string      `json:"description,omitempty"`
	Category          string      `json:"category,omitempty" validate:"omitempty,oneof=Academic Sports Cultural Technical Other"`
	Date              dbtime.Date `json:"date" validate:"required"`
	CertificateBase64 string      `json:"certificateBase64,omitempty"`
}

type AchievementUpdateDTO struct {
	Title             *string      `json:"title,omitempty"`
	Description       *string      `json:"description,omitempty"`
	Category          *string      `json:"category,omitempty" validate:"omitempty,oneof=Academic Sports Cultural Technical Other"`
	Date              *dbtime.Date `json:"date,omitempty"`
	CertificateBase64 string       `json:"certificateBase64,omitempty"`
}

type AchievementFilterDTO struct {
	Category string `query:"category"`
}

func (p *AchievementCreateDTO) ToModel(certificateURL string) model.AchievementModel {
	return model.AchievementModel{
		StudentID:      p.StudentID,
		Title:          strings.TrimSpace(p.Title),
		Description:    strings.TrimSpace(p.Description),
		Category:       p.Category,
		Date:           p.Date.Time,
		CertificateURL: certificateURL,
	}
}

var UpdatableColumns = []string{"Title", "Description", "Category", "Date", "CertificateURL"}

func (u *AchievementUpdateDTO) ApplyUpdates(ent *model.AchievementModel) {
	if u.Title != nil && strings.TrimSpace(*u.Title) != "" {
		ent.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		ent.Description = strings.TrimSpace(*u.Description)
	}
	if u.Category != nil && *u.Category != "" {
		ent.Category = *u.Category
	}
	if t := u.Date.Ptr(); t != nil {
		ent.Date = *t
	}
}
