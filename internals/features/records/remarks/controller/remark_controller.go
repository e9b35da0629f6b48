package controller

import (
	"csms_backend/internals/features/records/remarks/dto"
	"csms_backend/internals/features/records/remarks/model"
	helper "csms_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgRemarkNotFound = "Remark not found"

type RemarkController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRemarkController(db *gorm.DB) *RemarkController {
	return &RemarkController{DB: db, Validator: helper.NewValidator()}
}

// POST /api/remarks (teacherId = pemanggil, termasuk admin)
func (ctl *RemarkController) Create(c *fiber.Ctx) error {
	me, err := helper.CurrentIdentity(c)
	if err != nil {
		return err
	}
	var body dto.RemarkCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, "Please provide studentId and remark"); err != nil {
		return err
	}

	ent := body.ToModel(me.ID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonCreated(c, "Remark added successfully", ent)
}

// GET /api/remarks/student/:studentId?type=&category=
func (ctl *RemarkController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var f dto.RemarkFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Preload("Teacher").
		Where("student_id = ?", studentID)
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}

	var list []model.RemarkModel
	if err := q.Order("created_at DESC").Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// PUT /api/remarks/:id
func (ctl *RemarkController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.RemarkUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, ""); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var ent model.RemarkModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgRemarkNotFound, "")
	}
	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select(dto.UpdatableColumns).Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonUpdated(c, "Remark updated successfully", ent)
}

// DELETE /api/remarks/:id
func (ctl *RemarkController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.RemarkModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgRemarkNotFound)
	}
	return helper.JsonDeleted(c, "Remark deleted successfully")
}
