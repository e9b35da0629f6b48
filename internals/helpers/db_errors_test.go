package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}

func TestMapDBError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound string
		dup      string
		code     int
		msg      string
	}{
		{"record not found", gorm.ErrRecordNotFound, "Student not found", "", 404, "Student not found"},
		{"default not found", gorm.ErrRecordNotFound, "", "", 404, "Not found"},
		{"duplicate", gorm.ErrDuplicatedKey, "", "Department already exists", 400, "Department already exists"},
		{"default duplicate", &pgconn.PgError{Code: "23505"}, "", "", 400, "Duplicate value"},
		{"fiber error passes", fiber.NewError(fiber.StatusForbidden, "nope"), "", "", 403, "nope"},
		{"anything else", errors.New("connection reset"), "", "", 500, "Server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MapDBError(tt.err, tt.notFound, tt.dup)
			var fe *fiber.Error
			if assert.ErrorAs(t, err, &fe) {
				assert.Equal(t, tt.code, fe.Code)
				assert.Equal(t, tt.msg, fe.Message)
			}
		})
	}
	assert.NoError(t, MapDBError(nil, "", ""))
}
