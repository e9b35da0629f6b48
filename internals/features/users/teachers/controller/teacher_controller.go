// file: internals/features/users/teachers/controller/teacher_controller.go
package controller

import (
	authService "csms_backend/internals/features/users/auth/service"
	"csms_backend/internals/features/users/teachers/dto"
	"csms_backend/internals/features/users/teachers/model"
	helper "csms_backend/internals/helpers"
	ossHelper "csms_backend/internals/helpers/oss"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgTeacherNotFound = "Teacher not found"
	msgTeacherExists   = "Teacher with this email or ID already exists"
	msgEmailTaken      = "Email already in use"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Blob      ossHelper.BlobService
}

func NewTeacherController(db *gorm.DB, blob ossHelper.BlobService) *TeacherController {
	return &TeacherController{DB: db, Validator: helper.NewValidator(), Blob: blob}
}

func withRelations(q *gorm.DB) *gorm.DB {
	return q.Preload("Department").Preload("AssignedSections")
}

func (ctl *TeacherController) findByID(c *fiber.Ctx, id uuid.UUID) (*model.TeacherModel, error) {
	var ent model.TeacherModel
	if err := withRelations(ctl.DB.WithContext(c.UserContext())).First(&ent, "id = ?", id).Error; err != nil {
		return nil, helper.MapDBError(err, msgTeacherNotFound, "")
	}
	return &ent, nil
}

// POST /api/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var body dto.TeacherCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body,
		"Please provide name, teacherId, email, password, and departmentId"); err != nil {
		return err
	}
	body.Normalize()

	db := ctl.DB.WithContext(c.UserContext())
	var n int64
	if err := db.Model(&model.TeacherModel{}).
		Where("email = ? OR teacher_id = ?", body.Email, body.TeacherID).
		Count(&n).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	if n > 0 {
		return fiber.NewError(fiber.StatusBadRequest, msgTeacherExists)
	}

	hash, err := authService.HashPassword(body.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	ent := body.ToModel(hash)
	if err := db.Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", msgTeacherExists)
	}

	created, err := ctl.findByID(c, ent.ID)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Teacher created successfully", created)
}

// GET /api/teachers?departmentId=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var f dto.TeacherFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	deptID, err := helper.ParseOptionalUUID(f.DepartmentID)
	if err != nil {
		return err
	}

	q := withRelations(ctl.DB.WithContext(c.UserContext()))
	if deptID != nil {
		q = q.Where("department_id = ?", *deptID)
	}
	var list []model.TeacherModel
	if err := q.Order("name ASC").Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// GET /api/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	ent, err := ctl.findByID(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", ent)
}

// PUT /api/teachers/:id
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.TeacherUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, ""); err != nil {
		return err
	}
	body.Normalize()

	db := ctl.DB.WithContext(c.UserContext())
	var ent model.TeacherModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgTeacherNotFound, "")
	}

	if body.Email != nil && *body.Email != "" && *body.Email != ent.Email {
		var n int64
		if err := db.Model(&model.TeacherModel{}).
			Where("email = ? AND id <> ?", *body.Email, ent.ID).
			Count(&n).Error; err != nil {
			return helper.MapDBError(err, "", "")
		}
		if n > 0 {
			return fiber.NewError(fiber.StatusBadRequest, msgEmailTaken)
		}
	}

	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select(dto.UpdatableColumns).Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", msgEmailTaken)
	}
	updated, err := ctl.findByID(c, ent.ID)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Teacher updated successfully", updated)
}

// POST /api/teachers/:id/upload-image
func (ctl *TeacherController) UploadImage(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		ImageBase64 string `json:"imageBase64" validate:"required"`
	}
	if err := helper.BindAndValidate(c, ctl.Validator, &body, "Please provide an image"); err != nil {
		return err
	}

	ctx := c.UserContext()
	var ent model.TeacherModel
	if err := ctl.DB.WithContext(ctx).First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgTeacherNotFound, "")
	}
	url, err := ctl.Blob.UploadImage(ctx, "teachers", body.ImageBase64)
	if err != nil {
		return err
	}
	if err := ctl.DB.WithContext(ctx).Model(&ent).Update("image_url", url).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonOK(c, "Image uploaded successfully", fiber.Map{"imageURL": url})
}

// DELETE /api/teachers/:id (hard; sections.teacher_id dibiarkan)
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.TeacherModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgTeacherNotFound)
	}
	return helper.JsonDeleted(c, "Teacher deleted successfully")
}
