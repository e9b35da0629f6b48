package controller

import (
	"strings"

	"csms_backend/internals/features/users/admins/service"
	studentModel "csms_backend/internals/features/users/students/model"
	studentRepo "csms_backend/internals/features/users/students/repository"
	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const searchLimit = 20

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /api/admin/dashboard
func (ctl *AdminController) Dashboard(c *fiber.Ctx) error {
	st, err := service.Dashboard(c.UserContext(), ctl.DB)
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonOK(c, "", st)
}

// GET /api/admin/search-student?query=
func (ctl *AdminController) SearchStudent(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Query("query"))
	if term == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide a search query")
	}
	list, err := studentRepo.Search(c.UserContext(), ctl.DB, term, searchLimit)
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}

// GET /api/admin/at-risk-students
func (ctl *AdminController) AtRiskStudents(c *fiber.Ctx) error {
	var list []studentModel.StudentModel
	err := studentRepo.WithRelations(ctl.DB.WithContext(c.UserContext())).
		Where("at_risk = ?", true).
		Order("updated_at DESC").
		Find(&list).Error
	if err != nil {
		return helper.MapDBError(err, "", "")
	}
	return helper.JsonList(c, list, len(list))
}
