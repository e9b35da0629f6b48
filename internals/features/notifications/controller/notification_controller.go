package controller

import (
	"csms_backend/internals/features/notifications/dto"
	"csms_backend/internals/features/notifications/model"
	helper "csms_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	msgNotificationNotFound = "Notification not found"
	listLimit               = 50
)

type NotificationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validator: helper.NewValidator()}
}

// POST /api/notifications
func (ctl *NotificationController) Create(c *fiber.Ctx) error {
	me, err := helper.CurrentIdentity(c)
	if err != nil {
		return err
	}
	var body dto.NotificationCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, "Please provide title and message"); err != nil {
		return err
	}

	ent := body.ToModel(me.ID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonCreated(c, "Notification posted successfully", ent)
}

// GET /api/notifications?target= (50 terbaru)
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	var f dto.NotificationFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	q := ctl.DB.WithContext(c.UserContext()).Preload("Poster")
	if f.Target != "" {
		q = q.Where("target = ?", f.Target)
	}
	var list []model.NotificationModel
	if err := q.Order("created_at DESC").Limit(listLimit).Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// PUT /api/notifications/:id
func (ctl *NotificationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.NotificationUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, ""); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var ent model.NotificationModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgNotificationNotFound, "")
	}
	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select(dto.UpdatableColumns).Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonUpdated(c, "Notification updated successfully", ent)
}

// DELETE /api/notifications/:id
func (ctl *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.NotificationModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgNotificationNotFound)
	}
	return helper.JsonDeleted(c, "Notification deleted successfully")
}
