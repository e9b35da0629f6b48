package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"csms_backend/internals/features/users/students/service"
	helper "csms_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	importTimeout   = 2 * time.Minute
)

// POST /api/students/import (multipart: file, departmentId, sectionId?)
func (ctl *StudentController) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please upload an xlsx file in field 'file'")
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".xlsx") {
		return fiber.NewError(fiber.StatusBadRequest, "Only .xlsx files are supported")
	}

	deptStr := strings.TrimSpace(c.FormValue("departmentId"))
	if deptStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Please provide departmentId")
	}
	deptID, err := uuid.Parse(deptStr)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Server error")
	}
	sectionID, err := helper.ParseOptionalUUID(c.FormValue("sectionId"))
	if err != nil {
		return err
	}

	file, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot read uploaded file")
	}
	defer file.Close()

	// import punya deadline sendiri, lepas dari timeout per-request
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.UserContext()), importTimeout)
	defer cancel()

	res, err := ctl.Roster.Import(ctx, file, deptID, sectionID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSpreadsheet) {
			log.Printf("[WARN] roster import: %v", err)
			return fiber.NewError(fiber.StatusBadRequest, "Failed to import students: invalid spreadsheet")
		}
		return helper.MapDBError(err, "", "Student with this email or roll number already exists")
	}
	return helper.JsonOK(c, fmt.Sprintf("Imported %d students", res.Imported), res)
}

// GET /api/admin/students/export
func (ctl *StudentController) Export(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return err
	}
	buf, err := ctl.Roster.Export(c.UserContext(), f)
	if err != nil {
		return helper.MapDBError(err, "", "")
	}

	name := fmt.Sprintf("students_%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
