package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "Invalid role") })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("pq: connection refused") })
	app.Get("/internal", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "oss down") })

	tests := []struct {
		path string
		code int
		msg  string
		ec   string
	}{
		{"/bad", 400, "Invalid role", "VALIDATION_ERROR"},
		{"/boom", 500, "Server error", "SERVER_ERROR"},
		{"/internal", 502, "oss down", "SERVER_ERROR"},
		{"/nope", 404, "Cannot GET /nope", "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			raw, _ := io.ReadAll(resp.Body)

			var body map[string]any
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.msg, body["message"])
			assert.Equal(t, tt.ec, body["error_code"])
		})
	}
}

type markBody struct {
	StudentID string `json:"studentId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=Present Absent Late"`
}

func TestErrorHandlerValidationFields(t *testing.T) {
	v := helper.NewValidator()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Post("/mark", func(c *fiber.Ctx) error {
		var body markBody
		if err := helper.BindAndValidate(c, v, &body, "Please provide studentId and status"); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	send := func(payload string) (int, map[string]any) {
		req := httptest.NewRequest("POST", "/mark", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		raw, _ := io.ReadAll(resp.Body)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		return resp.StatusCode, body
	}

	t.Run("required", func(t *testing.T) {
		code, body := send(`{"status":"Present"}`)
		assert.Equal(t, 400, code)
		assert.Equal(t, "Please provide studentId and status", body["message"])
		assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
		fields, ok := body["errors"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "studentId is required", fields["studentId"])
	})

	t.Run("oneof", func(t *testing.T) {
		code, body := send(`{"studentId":"s1","status":"Sick"}`)
		assert.Equal(t, 400, code)
		assert.Equal(t, "status must be one of: Present, Absent, Late", body["message"])
		fields := body["errors"].(map[string]any)
		assert.Equal(t, "status must be one of: Present, Absent, Late", fields["status"])
	})

	t.Run("plain fiber errors carry no field map", func(t *testing.T) {
		code, body := send(`{not json`)
		assert.Equal(t, 400, code)
		assert.Equal(t, "Invalid request body", body["message"])
		_, has := body["errors"]
		assert.False(t, has)
	})
}
