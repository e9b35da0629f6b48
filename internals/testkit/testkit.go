// Package testkit berisi helper bersama untuk test: SQLite in-memory,
// config, token, dan app Fiber dengan error handler produksi.
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"csms_backend/internals/configs"
	"csms_backend/internals/constants"
	database "csms_backend/internals/databases"
	authService "csms_backend/internals/features/users/auth/service"
	helper "csms_backend/internals/helpers"
	middlewares "csms_backend/internals/middlewares"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const Secret = "test-secret"

func Config() *configs.Config {
	return &configs.Config{
		AppEnv:    "test",
		JWTSecret: Secret,
		JWTExpire: "1h",
		TokenTTL:  time.Hour,
	}
}

// NewDB membuka SQLite in-memory yang terisolasi per test, sudah di-migrate.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString()[:8])

	gcfg := database.GormConfig(Config())
	gcfg.Logger = gormLogger.Default.LogMode(gormLogger.Silent)

	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func Tokens() *authService.TokenService {
	return authService.NewTokenService(Config())
}

// Token menerbitkan token valid untuk role & id tertentu.
func Token(t testing.TB, role constants.Role, id uuid.UUID) string {
	t.Helper()
	tok, _, err := Tokens().Issue(helper.Identity{ID: id, Email: string(role) + "@csms.test", Role: role})
	require.NoError(t, err)
	return tok
}

// SignClaims menandatangani claims bebas dengan secret test (untuk kasus expired / tanpa exp).
func SignClaims(t testing.TB, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	require.NoError(t, err)
	return tok
}

func NewApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
}

// Response hasil Do: status + body JSON yang sudah di-decode.
type Response struct {
	Status int
	Body   map[string]any
	Raw    []byte
	Header http.Header
}

// Do mengirim request JSON. body nil → tanpa body.
func Do(t testing.TB, app *fiber.App, method, path string, body any, token string) Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return Send(t, app, req)
}

func Send(t testing.TB, app *fiber.App, req *http.Request) Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{Status: resp.StatusCode, Raw: raw, Header: resp.Header}
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out.Body), string(raw))
	}
	return out
}

// Data mengambil field "data" sebagai object.
func (r Response) Data() map[string]any {
	m, _ := r.Body["data"].(map[string]any)
	return m
}

// List mengambil field "data" sebagai array object.
func (r Response) List() []map[string]any {
	arr, _ := r.Body["data"].([]any)
	out := make([]map[string]any, 0, len(arr))
	for _, v := range arr {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func (r Response) Message() string {
	s, _ := r.Body["message"].(string)
	return s
}
