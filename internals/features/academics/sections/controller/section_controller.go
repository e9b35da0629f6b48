// file: internals/features/academics/sections/controller/section_controller.go
package controller

import (
	"csms_backend/internals/features/academics/sections/dto"
	"csms_backend/internals/features/academics/sections/model"
	helper "csms_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgSectionNotFound = "Section not found"

type SectionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db, Validator: helper.NewValidator()}
}

// POST /api/sections
func (ctl *SectionController) Create(c *fiber.Ctx) error {
	var body dto.SectionCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, "Please provide name and departmentId"); err != nil {
		return err
	}
	body.Normalize()

	// satu write saja: daftar section milik department diturunkan dari department_id
	ent := body.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonCreated(c, "Section created successfully", ent)
}

// GET /api/sections?departmentId=
func (ctl *SectionController) List(c *fiber.Ctx) error {
	var f dto.SectionFilterDTO
	if err := c.QueryParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	deptID, err := helper.ParseOptionalUUID(f.DepartmentID)
	if err != nil {
		return err
	}

	q := ctl.DB.WithContext(c.UserContext()).
		Preload("Department").
		Preload("Teacher")
	if deptID != nil {
		q = q.Where("department_id = ?", *deptID)
	}

	var list []model.SectionModel
	if err := q.Order("name ASC").Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// GET /api/sections/:id
func (ctl *SectionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var ent model.SectionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Preload("Department").
		Preload("Teacher").
		Preload("Students", func(tx *gorm.DB) *gorm.DB { return tx.Order("roll_number ASC") }).
		First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgSectionNotFound, "")
	}
	return helper.JsonOK(c, "", ent)
}

// PUT /api/sections/:id
func (ctl *SectionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.SectionUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	db := ctl.DB.WithContext(c.UserContext())
	var ent model.SectionModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgSectionNotFound, "")
	}
	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select("Name", "DepartmentID", "TeacherID").Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	if err := db.Preload("Department").Preload("Teacher").First(&ent, "id = ?", ent.ID).Error; err != nil {
		return helper.MapDBError(err, msgSectionNotFound, "")
	}
	return helper.JsonUpdated(c, "Section updated successfully", ent)
}

// DELETE /api/sections/:id
func (ctl *SectionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SectionModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgSectionNotFound)
	}
	return helper.JsonDeleted(c, "Section deleted successfully")
}
