package model

import (
	"time"

	"csms_backend/internals/constants"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID      uuid.UUID `gorm:"type:uuid;not null;index" json:"studentId"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Description    string    `json:"description,omitempty"`
	CertificateURL string    `gorm:"column:certificate_url" json:"certificateURL"`
	Category       string    `gorm:"type:varchar(12);not null;default:'Academic'" json:"category"`
	Date           time.Time `gorm:"not null" json:"date"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AchievementModel) TableName() string {
	return "achievements"
}

func (a *AchievementModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Category == "" {
		a.Category = constants.AchievementCategoryAcademic
	}
	return nil
}
