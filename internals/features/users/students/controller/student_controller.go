// file: internals/features/users/students/controller/student_controller.go
package controller

import (
	"strconv"
	"strings"

	"csms_backend/internals/constants"
	authService "csms_backend/internals/features/users/auth/service"
	"csms_backend/internals/features/users/students/dto"
	"csms_backend/internals/features/users/students/model"
	studentRepo "csms_backend/internals/features/users/students/repository"
	"csms_backend/internals/features/users/students/service"
	helper "csms_backend/internals/helpers"
	ossHelper "csms_backend/internals/helpers/oss"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	msgStudentNotFound = "Student not found"
	msgStudentExists   = "Student with this email or roll number already exists"
	msgEmailTaken      = "Email already in use"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Blob      ossHelper.BlobService
	Roster    *service.RosterService
}

func NewStudentController(db *gorm.DB, blob ossHelper.BlobService) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: helper.NewValidator(),
		Blob:      blob,
		Roster:    service.NewRosterService(db),
	}
}

// -----------------------------
// Create
// -----------------------------
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.StudentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body,
		"Please provide name, rollNumber, email, password, and departmentId"); err != nil {
		return err
	}
	body.Normalize()

	ctx := c.UserContext()
	exists, err := studentRepo.ExistsByEmailOrRoll(ctx, ctl.DB, body.Email, body.RollNumber)
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	if exists {
		return fiber.NewError(fiber.StatusBadRequest, msgStudentExists)
	}

	hash, err := authService.HashPassword(body.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}

	// satu write: keanggotaan section diturunkan dari students.section_id
	ent := body.ToModel(hash)
	if err := ctl.DB.WithContext(ctx).Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", msgStudentExists)
	}

	created, err := studentRepo.FindByID(ctx, ctl.DB, ent.ID)
	if err != nil {
		return helper.MapDBError(err, msgStudentNotFound, "")
	}
	return helper.JsonCreated(c, "Student created successfully", created)
}

// -----------------------------
// List & detail
// -----------------------------

func parseFilter(c *fiber.Ctx) (studentRepo.StudentFilter, error) {
	var q dto.StudentFilterDTO
	if err := c.QueryParser(&q); err != nil {
		return studentRepo.StudentFilter{}, fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	var f studentRepo.StudentFilter
	var err error
	if f.DepartmentID, err = helper.ParseOptionalUUID(q.DepartmentID); err != nil {
		return f, err
	}
	if f.SectionID, err = helper.ParseOptionalUUID(q.SectionID); err != nil {
		return f, err
	}
	f.Status = strings.TrimSpace(q.Status)
	if v := strings.TrimSpace(q.AtRisk); v != "" {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return f, fiber.NewError(fiber.StatusBadRequest, "atRisk must be true or false")
		}
		f.AtRisk = &b
	}
	return f, nil
}

// GET /api/students?departmentId&sectionId&status&atRisk
func (ctl *StudentController) List(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return err
	}
	list, err := studentRepo.List(c.UserContext(), ctl.DB, f)
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// GET /api/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	st, err := studentRepo.FindByID(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.MapDBError(err, msgStudentNotFound, "")
	}
	return helper.JsonOK(c, "", st)
}

// -----------------------------
// Update (partial)
// -----------------------------
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.StudentUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, ""); err != nil {
		return err
	}
	body.Normalize()

	ctx := c.UserContext()
	db := ctl.DB.WithContext(ctx)
	var ent model.StudentModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgStudentNotFound, "")
	}

	if body.Email != nil && *body.Email != "" && *body.Email != ent.Email {
		taken, err := studentRepo.EmailTakenByOther(ctx, ctl.DB, *body.Email, ent.ID)
		if err != nil {
			return helper.MapDBError(err, "", "")
		}
		if taken {
			return fiber.NewError(fiber.StatusBadRequest, msgEmailTaken)
		}
	}

	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select(dto.UpdatableColumns).Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", msgEmailTaken)
	}

	updated, err := studentRepo.FindByID(ctx, ctl.DB, ent.ID)
	if err != nil {
		return helper.MapDBError(err, msgStudentNotFound, "")
	}
	return helper.JsonUpdated(c, "Student updated successfully", updated)
}

// POST /api/students/:id/upload-image
func (ctl *StudentController) UploadImage(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.UploadImageDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, "Please provide an image"); err != nil {
		return err
	}

	ctx := c.UserContext()
	var ent model.StudentModel
	if err := ctl.DB.WithContext(ctx).First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgStudentNotFound, "")
	}

	url, err := ctl.Blob.UploadImage(ctx, "students", body.ImageBase64)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(ctx).Model(&ent).Update("image_url", url).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonOK(c, "Image uploaded successfully", fiber.Map{"imageURL": url})
}

// -----------------------------
// Delete (soft: status → Inactive)
// -----------------------------
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&model.StudentModel{}).
		Where("id = ?", id).
		Update("status", constants.StudentStatusInactive)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgStudentNotFound)
	}
	return helper.JsonDeleted(c, "Student deactivated successfully")
}
