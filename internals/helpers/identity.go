package helper

import (
	"csms_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Key Locals yang diisi middleware auth.
const (
	LocUserID   = "user_id"
	LocEmail    = "email"
	LocUserRole = "userRole"
	LocIdentity = "identity"
)

// Identity adalah hasil decode token yang ditempel ke request.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  constants.Role
}

func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(LocUserID, id.ID.String())
	c.Locals(LocEmail, id.Email)
	c.Locals(LocUserRole, string(id.Role))
	c.Locals(LocIdentity, id)
}

// CurrentIdentity membaca identity dari Locals. Tanpa middleware auth → 401.
func CurrentIdentity(c *fiber.Ctx) (Identity, error) {
	id, ok := c.Locals(LocIdentity).(Identity)
	if !ok || id.ID == uuid.Nil {
		return Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Not authorized, no token")
	}
	return id, nil
}
