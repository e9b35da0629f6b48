package model

import (
	"time"

	"csms_backend/internals/constants"
	"csms_backend/internals/features/shared/brief"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationModel struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string                         `gorm:"size:200;not null" json:"title"`
	Message   string                         `gorm:"not null" json:"message"`
	PostedBy  uuid.UUID                      `gorm:"column:posted_by;type:uuid;not null" json:"postedBy"`
	Target    string                         `gorm:"type:varchar(12);not null;default:'all';index" json:"target"`
	TargetIDs datatypes.JSONSlice[uuid.UUID] `gorm:"column:target_ids" json:"targetIds"`
	Priority  string                         `gorm:"type:varchar(8);not null;default:'medium'" json:"priority"`
	CreatedAt time.Time                      `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time                      `gorm:"autoUpdateTime" json:"updatedAt"`

	Poster *brief.AdminBrief `gorm:"foreignKey:PostedBy;references:ID" json:"poster,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Target == "" {
		n.Target = constants.NotificationTargetAll
	}
	if n.Priority == "" {
		n.Priority = constants.NotificationPriorityMedium
	}
	return nil
}
