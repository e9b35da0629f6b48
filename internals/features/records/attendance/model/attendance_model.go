package model

import (
	"time"

	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"studentId"`
	Subject   string     `gorm:"size:120;not null" json:"subject"`
	Date      time.Time  `gorm:"not null;index" json:"date"`
	Status    string     `gorm:"type:varchar(10);not null" json:"status"`
	MarkedBy  *uuid.UUID `gorm:"column:marked_by;type:uuid" json:"markedBy,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Marker *brief.TeacherBrief `gorm:"foreignKey:MarkedBy;references:ID" json:"marker,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
