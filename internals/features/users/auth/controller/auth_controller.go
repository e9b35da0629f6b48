package controller

import (
	"csms_backend/internals/features/users/auth/dto"
	"csms_backend/internals/features/users/auth/service"
	helper "csms_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Service   *service.AuthService
	Validator *validator.Validate
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc, Validator: helper.NewValidator()}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BindAndValidate(c, ac.Validator, &req, "Please provide email, password, and role"); err != nil {
		return err
	}
	req.Normalize()

	resp, err := ac.Service.Login(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// POST /api/auth/register-admin
func (ac *AuthController) RegisterAdmin(c *fiber.Ctx) error {
	var req dto.RegisterAdminRequest
	if err := helper.BindAndValidate(c, ac.Validator, &req, "Please provide name, adminId, email, and password"); err != nil {
		return err
	}
	req.Normalize()

	if _, err := ac.Service.RegisterAdmin(c.UserContext(), req); err != nil {
		return err
	}
	return helper.JsonCreated(c, "Admin registered successfully", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id, err := helper.CurrentIdentity(c)
	if err != nil {
		return err
	}
	user, err := ac.Service.Me(c.UserContext(), id.Role, id.ID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", user)
}
