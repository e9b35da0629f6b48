package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"csms_backend/internals/constants"
	authService "csms_backend/internals/features/users/auth/service"
	helper "csms_backend/internals/helpers"
	"csms_backend/internals/testkit"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := testkit.NewApp()
	protect := AuthMiddleware(testkit.Tokens())
	app.Get("/any", protect, AnyRole(), func(c *fiber.Ctx) error {
		id, err := helper.CurrentIdentity(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"id":       c.Locals(helper.LocUserID),
			"userRole": c.Locals(helper.LocUserRole),
			"email":    id.Email,
		})
	})
	app.Get("/admin", protect, OnlyAdmin("reports"), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/staff", protect, TeacherOrAdmin("grades"), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	app := newApp()
	id := uuid.New()
	tok := testkit.Token(t, constants.RoleStudent, id)

	for _, header := range []string{"Bearer " + tok, "bearer   " + tok, `Bearer "` + tok + `"`} {
		req := httptest.NewRequest("GET", "/any", nil)
		req.Header.Set(fiber.HeaderAuthorization, header)
		res := testkit.Send(t, app, req)
		require.Equal(t, fiber.StatusOK, res.Status, header)
		assert.Equal(t, id.String(), res.Body["id"])
		assert.Equal(t, "student", res.Body["userRole"])
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	app := newApp()
	id := uuid.New()

	expired := testkit.SignClaims(t, authService.Claims{
		UserID: id.String(), Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	})
	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, authService.Claims{
		UserID: id.String(), Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("someone-else"))
	require.NoError(t, err)
	unknownRole := testkit.SignClaims(t, authService.Claims{
		UserID: id.String(), Role: "principal",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})

	tests := []struct {
		name   string
		header string
		msg    string
	}{
		{"no header", "", "Not authorized, no token"},
		{"wrong scheme", "Basic abc", "Not authorized, no token"},
		{"bearer only", "Bearer", "Not authorized, no token"},
		{"garbage", "Bearer not.a.jwt", "Not authorized, token failed"},
		{"expired", "Bearer " + expired, "Not authorized, token expired"},
		{"other secret", "Bearer " + otherSecret, "Not authorized, token failed"},
		{"unknown role", "Bearer " + unknownRole, "Not authorized, token failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/any", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			res := testkit.Send(t, app, req)
			assert.Equal(t, fiber.StatusUnauthorized, res.Status)
			assert.Equal(t, tt.msg, res.Message())
			assert.Equal(t, "UNAUTHORIZED", res.Body["error_code"])
		})
	}
}

func TestRoleClasses(t *testing.T) {
	app := newApp()
	tests := []struct {
		role constants.Role
		path string
		want int
	}{
		{constants.RoleAdmin, "/admin", 200},
		{constants.RoleTeacher, "/admin", 403},
		{constants.RoleStudent, "/admin", 403},
		{constants.RoleAdmin, "/staff", 200},
		{constants.RoleTeacher, "/staff", 200},
		{constants.RoleStudent, "/staff", 403},
	}
	for _, tt := range tests {
		t.Run(string(tt.role)+tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+testkit.Token(t, tt.role, uuid.New()))
			res := testkit.Send(t, app, req)
			assert.Equal(t, tt.want, res.Status)
			if tt.want == 403 {
				assert.Contains(t, res.Message(), "can access")
			}
		})
	}
}

func TestRequireRoleWithoutAuthIs401(t *testing.T) {
	app := testkit.NewApp()
	app.Get("/x", OnlyAdmin("x"), func(c *fiber.Ctx) error { return c.SendStatus(200) })
	res := testkit.Send(t, app, httptest.NewRequest("GET", "/x", nil))
	assert.Equal(t, fiber.StatusUnauthorized, res.Status)
}
