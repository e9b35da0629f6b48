package dto

import (
	"strings"

	"csms_backend/internals/features/notifications/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationCreateDTO struct {
	Title     string      `json:"title" validate:"required"`
	Message   string      `json:"message" validate:"required"`
	Target    string      `json:"target,omitempty" validate:"omitempty,oneof=all students teachers section department"`
	TargetIDs []uuid.UUID `json:"targetIds,omitempty"`
	Priority  string      `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

type NotificationUpdateDTO struct {
	Title     *string      `json:"title,omitempty"`
	Message   *string      `json:"message,omitempty"`
	Target    *string      `json:"target,omitempty" validate:"omitempty,oneof=all students teachers section department"`
	TargetIDs *[]uuid.UUID `json:"targetIds,omitempty"`
	Priority  *string      `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

type NotificationFilterDTO struct {
	Target string `query:"target"`
}

func (p *NotificationCreateDTO) ToModel(postedBy uuid.UUID) model.NotificationModel {
	ids := p.TargetIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return model.NotificationModel{
		Title:     strings.TrimSpace(p.Title),
		Message:   strings.TrimSpace(p.Message),
		PostedBy:  postedBy,
		Target:    p.Target,
		TargetIDs: datatypes.JSONSlice[uuid.UUID](ids),
		Priority:  p.Priority,
	}
}

var UpdatableColumns = []string{"Title", "Message", "Target", "TargetIDs", "Priority"}

func (u *NotificationUpdateDTO) ApplyUpdates(ent *model.NotificationModel) {
	if u.Title != nil && strings.TrimSpace(*u.Title) != "" {
		ent.Title = strings.TrimSpace(*u.Title)
	}
	if u.Message != nil && strings.TrimSpace(*u.Message) != "" {
		ent.Message = strings.TrimSpace(*u.Message)
	}
	if u.Target != nil && *u.Target != "" {
		ent.Target = *u.Target
	}
	if u.TargetIDs != nil {
		ent.TargetIDs = datatypes.JSONSlice[uuid.UUID](*u.TargetIDs)
	}
	if u.Priority != nil && *u.Priority != "" {
		ent.Priority = *u.Priority
	}
}
