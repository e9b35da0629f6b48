package auth

import (
	"fmt"

	"csms_backend/internals/constants"
	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// RequireRole: RoleChecked → Authorized. Harus dipasang setelah AuthMiddleware.
func RequireRole(class constants.RoleClass, forbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := helper.CurrentIdentity(c)
		if err != nil {
			return err
		}
		if class.Allows(id.Role) {
			return c.Next()
		}

		msg := forbiddenMessage
		if msg == "" {
			msg = fmt.Sprintf("User role %s is not authorized to access this route", id.Role)
		}
		return fiber.NewError(fiber.StatusForbidden, msg)
	}
}

// Shortcut pemakaian di route.
func OnlyAdmin(feature string) fiber.Handler {
	return RequireRole(constants.AdminOnly, constants.RoleErrorAdmin(feature))
}

func TeacherOrAdmin(feature string) fiber.Handler {
	return RequireRole(constants.TeacherOrAdmin, constants.RoleErrorTeacher(feature))
}

func AnyRole() fiber.Handler {
	return RequireRole(constants.AnyRole, "")
}
