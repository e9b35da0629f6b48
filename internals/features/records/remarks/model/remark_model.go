package model

import (
	"time"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RemarkModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"studentId"`
	TeacherID *uuid.UUID `gorm:"type:uuid" json:"teacherId,omitempty"`
	Remark    string     `gorm:"not null" json:"remark"`
	Type      string     `gorm:"type:varchar(10);not null;default:'neutral'" json:"type"`
	Category  string     `gorm:"type:varchar(20);not null;default:'Academic'" json:"category"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Teacher *brief.TeacherBrief `gorm:"foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
}

func (RemarkModel) TableName() string {
	return "remarks"
}

func (r *RemarkModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Type == "" {
		r.Type = constants.RemarkTypeNeutral
	}
	if r.Category == "" {
		r.Category = constants.RemarkCategoryAcademic
	}
	return nil
}
