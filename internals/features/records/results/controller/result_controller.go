package controller

import (
	"csms_backend/internals/features/records/results/dto"
	"csms_backend/internals/features/records/results/model"
	helper "csms_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgResultNotFound = "Result not found"

type ResultController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db, Validator: helper.NewValidator()}
}

// POST /api/results
func (ctl *ResultController) Create(c *fiber.Ctx) error {
	me, err := helper.CurrentIdentity(c)
	if err != nil {
		return err
	}
	var body dto.ResultCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body,
		"Please provide studentId, semester, subject, and marks"); err != nil {
		return err
	}

	ent := body.ToModel(me.ID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonCreated(c, "Result created successfully", ent)
}

// GET /api/results/student/:studentId?semester=&examType=
func (ctl *ResultController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var f dto.ResultFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Preload("Creator").
		Where("student_id = ?", studentID)
	if f.Semester > 0 {
		q = q.Where("semester = ?", f.Semester)
	}
	if f.ExamType != "" {
		q = q.Where("exam_type = ?", f.ExamType)
	}

	var list []model.ResultModel
	if err := q.Order("semester ASC").Order("subject ASC").Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// PUT /api/results/:id
func (ctl *ResultController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.ResultUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, ""); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var ent model.ResultModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgResultNotFound, "")
	}
	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select(dto.UpdatableColumns).Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonUpdated(c, "Result updated successfully", ent)
}

// DELETE /api/results/:id
func (ctl *ResultController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ResultModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgResultNotFound)
	}
	return helper.JsonDeleted(c, "Result deleted successfully")
}
