package model

import (
	"time"

	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TeacherModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string                      `gorm:"size:120;not null" json:"name"`
	TeacherID    string                      `gorm:"column:teacher_id;size:50;not null;uniqueIndex" json:"teacherId"`
	Email        string                      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password     string                      `gorm:"not null" json:"-"`
	DepartmentID uuid.UUID                   `gorm:"type:uuid;not null;index" json:"departmentId"`
	ImageURL     string                      `gorm:"column:image_url;default:''" json:"imageURL"`
	Phone        string                      `gorm:"size:30" json:"phone,omitempty"`
	Subjects     datatypes.JSONSlice[string] `json:"subjects"`
	Experience   *int                        `json:"experience,omitempty"`
	Designation  string                      `gorm:"size:120" json:"designation,omitempty"`
	LastLogin    *time.Time                  `gorm:"column:last_login" json:"lastLogin,omitempty"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`

	// populate (read-only)
	Department       *brief.DepartmentBrief `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	AssignedSections []brief.SectionBrief   `gorm:"foreignKey:TeacherID;references:ID" json:"assignedSections,omitempty"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

func (t *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
