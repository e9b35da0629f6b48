package model

import (
	"time"

	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentModel: daftar section tidak disimpan sebagai array,
// tapi diturunkan dari sections.department_id.
type DepartmentModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"size:120;not null" json:"name"`
	Code      string     `gorm:"size:30;not null;uniqueIndex" json:"code"`
	HodID     *uuid.UUID `gorm:"column:hod_id;type:uuid" json:"hodId,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Hod      *brief.TeacherBrief  `gorm:"foreignKey:HodID;references:ID" json:"hod,omitempty"`
	Sections []brief.SectionBrief `gorm:"foreignKey:DepartmentID;references:ID" json:"sections"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

func (d *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
