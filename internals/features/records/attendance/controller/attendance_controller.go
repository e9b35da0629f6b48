// file: internals/features/records/attendance/controller/attendance_controller.go
package controller

import (
	"csms_backend/internals/features/records/attendance/dto"
	"csms_backend/internals/features/records/attendance/model"
	"csms_backend/internals/features/records/attendance/service"
	helper "csms_backend/internals/helpers"
	"csms_backend/internals/helpers/dbtime"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgAttendanceNotFound = "Attendance record not found"

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: helper.NewValidator()}
}

// POST /api/attendance
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	me, err := helper.CurrentIdentity(c)
	if err != nil {
		return err
	}
	var body dto.AttendanceCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body,
		"Please provide studentId, subject, date, and status"); err != nil {
		return err
	}

	ent := body.ToModel(me.ID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonCreated(c, "Attendance marked successfully", ent)
}

// GET /api/attendance/student/:studentId?subject=&startDate=&endDate=
func (ctl *AttendanceController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseIDParam(c, "studentId")
	if err != nil {
		return err
	}
	var f dto.AttendanceFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	start, err := dbtime.ParsePtr(f.StartDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid startDate")
	}
	end, err := dbtime.ParsePtr(f.EndDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid endDate")
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Preload("Marker").
		Where("student_id = ?", studentID)
	if f.Subject != "" {
		q = q.Where("subject = ?", f.Subject)
	}
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", dbtime.EndOfDay(*end))
	}

	var list []model.AttendanceModel
	if err := q.Order("date DESC").Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"attendance": list,
		"statistics": service.Summarize(list),
	})
}

// PUT /api/attendance/:id
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.AttendanceUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, ""); err != nil {
		return err
	}

	db := ctl.DB.WithContext(c.UserContext())
	var ent model.AttendanceModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgAttendanceNotFound, "")
	}
	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select(dto.UpdatableColumns).Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonUpdated(c, "Attendance updated successfully", ent)
}

// DELETE /api/attendance/:id
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.AttendanceModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgAttendanceNotFound)
	}
	return helper.JsonDeleted(c, "Attendance deleted successfully")
}
