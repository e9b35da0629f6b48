package model

import (
	"time"

	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SectionModel: daftar student diturunkan dari students.section_id,
// jadi membuat student di sebuah section cukup satu write.
type SectionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"size:120;not null" json:"name"`
	DepartmentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"departmentId"`
	TeacherID    *uuid.UUID `gorm:"type:uuid;index" json:"teacherId,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	Department *brief.DepartmentBrief `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`
	Teacher    *brief.TeacherBrief    `gorm:"foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	Students   []brief.StudentBrief   `gorm:"foreignKey:SectionID;references:ID" json:"students,omitempty"`
}

func (SectionModel) TableName() string {
	return "sections"
}

func (s *SectionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
