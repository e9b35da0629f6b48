package model

import (
	"time"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"size:120;not null" json:"name"`
	RollNumber    string     `gorm:"column:roll_number;size:50;not null;uniqueIndex" json:"rollNumber"`
	Email         string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	DepartmentID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"departmentId"`
	SectionID     *uuid.UUID `gorm:"type:uuid;index" json:"sectionId,omitempty"`
	ImageURL      string     `gorm:"column:image_url;default:''" json:"imageURL"`
	Phone         string     `gorm:"size:30" json:"phone,omitempty"`
	GuardianName  string     `gorm:"size:120" json:"guardianName,omitempty"`
	GuardianPhone string     `gorm:"size:30" json:"guardianPhone,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	Address       string     `json:"address,omitempty"`
	BacklogCount  int        `gorm:"not null;default:0" json:"backlogCount"`
	AtRisk        bool       `gorm:"not null;default:false;index" json:"atRisk"`
	Status        string     `gorm:"type:varchar(10);not null;default:'Active';index" json:"status"`
	LastLogin     *time.Time `gorm:"column:last_login" json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// populate (read-only)
	Department *brief.DepartmentBrief `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	Section    *brief.SectionBrief    `gorm:"foreignKey:SectionID;references:ID" json:"section,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = constants.StudentStatusActive
	}
	return nil
}
