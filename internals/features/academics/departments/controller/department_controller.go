// file: internals/features/academics/departments/controller/department_controller.go
package controller

import (
	"csms_backend/internals/features/academics/departments/dto"
	"csms_backend/internals/features/academics/departments/model"
	"csms_backend/internals/features/shared/brief"
	helper "csms_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	msgDepartmentNotFound  = "Department not found"
	msgDepartmentCodeTaken = "Department code already exists"
)

type DepartmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validator: helper.NewValidator()}
}

func (ctl *DepartmentController) withRelations(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Hod").Preload("Sections")
}

func (ctl *DepartmentController) codeTaken(tx *gorm.DB, code string, exceptID uuid.UUID) (bool, error) {
	var n int64
	q := tx.Model(&model.DepartmentModel{}).Where("code = ?", code)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

// -----------------------------
// Create
// -----------------------------
func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var body dto.DepartmentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &body, "Please provide name and code"); err != nil {
		return err
	}
	body.Normalize()

	db := ctl.DB.WithContext(c.UserContext())
	taken, err := ctl.codeTaken(db, body.Code, uuid.Nil)
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	if taken {
		return fiber.NewError(fiber.StatusBadRequest, msgDepartmentCodeTaken)
	}

	ent := body.ToModel()
	if err := db.Create(&ent).Error; err != nil {
		return helper.MapDBError(err, "", msgDepartmentCodeTaken)
	}
	ent.Sections = []brief.SectionBrief{}
	return helper.JsonCreated(c, "Department created successfully", ent)
}

// -----------------------------
// List & detail
// -----------------------------
func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	var list []model.DepartmentModel
	if err := ctl.withRelations(ctl.DB.WithContext(c.UserContext())).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

func (ctl *DepartmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var ent model.DepartmentModel
	if err := ctl.withRelations(ctl.DB.WithContext(c.UserContext())).
		First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgDepartmentNotFound, "")
	}
	return helper.JsonOK(c, "", ent)
}

// -----------------------------
// Update (partial)
// -----------------------------
func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	var body dto.DepartmentUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	body.Normalize()

	db := ctl.DB.WithContext(c.UserContext())
	var ent model.DepartmentModel
	if err := db.First(&ent, "id = ?", id).Error; err != nil {
		return helper.MapDBError(err, msgDepartmentNotFound, "")
	}

	if body.Code != nil && *body.Code != "" && *body.Code != ent.Code {
		taken, err := ctl.codeTaken(db, *body.Code, ent.ID)
		if err != nil {
			return helper.MapDBError(err, "", "")
		}
		if taken {
			return fiber.NewError(fiber.StatusBadRequest, msgDepartmentCodeTaken)
		}
	}

	body.ApplyUpdates(&ent)
	if err := db.Model(&ent).Select("Name", "Code", "HodID").Updates(&ent).Error; err != nil {
		return helper.MapDBError(err, "", msgDepartmentCodeTaken)
	}

	if err := ctl.withRelations(db).First(&ent, "id = ?", ent.ID).Error; err != nil {
		return helper.MapDBError(err, msgDepartmentNotFound, "")
	}
	return helper.JsonUpdated(c, "Department updated successfully", ent)
}

// -----------------------------
// Delete (hard, tanpa cascade ke sections)
// -----------------------------
func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.DepartmentModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapDBError(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, msgDepartmentNotFound)
	}
	return helper.JsonDeleted(c, "Department deleted successfully")
}
