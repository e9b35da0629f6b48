package model

import (
	"time"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResultModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"studentId"`
	Semester  int        `gorm:"not null" json:"semester"`
	Subject   string     `gorm:"size:120;not null" json:"subject"`
	Marks     float64    `gorm:"not null" json:"marks"`
	MaxMarks  float64    `gorm:"not null;default:100" json:"maxMarks"`
	Grade     string     `gorm:"size:5" json:"grade,omitempty"`
	ExamType  string     `gorm:"type:varchar(12);not null;default:'Internal'" json:"examType"`
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid" json:"createdBy,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Creator *brief.TeacherBrief `gorm:"foreignKey:CreatedBy;references:ID" json:"creator,omitempty"`
}

func (ResultModel) TableName() string {
	return "results"
}

func (r *ResultModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.MaxMarks == 0 {
		r.MaxMarks = 100
	}
	if r.ExamType == "" {
		r.ExamType = constants.ExamTypeInternal
	}
	return nil
}
