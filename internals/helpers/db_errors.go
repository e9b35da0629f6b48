package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation mengenali pelanggaran unique dari pgx, lib/pq,
// atau hasil TranslateError GORM (dipakai juga oleh driver sqlite di test).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return true
	}
	return false
}

// MapDBError menerjemahkan error storage ke *fiber.Error.
//   - record not found → 404 dengan notFoundMsg
//   - unique violation → 400 dengan dupMsg
//   - sisanya → 500 "Server error" (detail hanya di log)
func MapDBError(err error, notFoundMsg, dupMsg string) error {
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFoundMsg == "" {
			notFoundMsg = "Not found"
		}
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}
	if IsUniqueViolation(err) {
		if dupMsg == "" {
			dupMsg = "Duplicate value"
		}
		return fiber.NewError(fiber.StatusBadRequest, dupMsg)
	}
	log.Printf("[ERROR] db: %v", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Server error")
}
