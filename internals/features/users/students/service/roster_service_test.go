package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"csms_backend/internals/constants"
	departmentModel "csms_backend/internals/features/academics/departments/model"
	"csms_backend/internals/features/users/students/model"
	studentRepo "csms_backend/internals/features/users/students/repository"
	"csms_backend/internals/features/users/students/service"
	"csms_backend/internals/testkit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, r := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(sheet, addr, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRosterImportThenExport(t *testing.T) {
	db := testkit.NewDB(t)
	dept := departmentModel.DepartmentModel{Name: "Civil", Code: "CIV"}
	require.NoError(t, db.Create(&dept).Error)

	existing := model.StudentModel{Name: "Old", RollNumber: "C000", Email: "old@csms.test", Password: "x", DepartmentID: dept.ID}
	require.NoError(t, db.Create(&existing).Error)

	header := []interface{}{"Roll Number", "Name", "Email", "Password", "Phone"}
	wb := buildWorkbook(t, [][]interface{}{
		header,
		{"C001", "Anita", "Anita@CSMS.test", "pw1", "0811"},
		{"C002", "Bima", "bima@csms.test", "pw2"},
		{"C003", "No Password", "nopw@csms.test", ""},
		{"C002", "Dup Roll", "dup@csms.test", "pw"},
		{"C000", "Exists", "exists@csms.test", "pw"},
		{},
	})

	svc := service.NewRosterService(db)
	res, err := svc.Import(context.Background(), wb, dept.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 3, res.Skipped)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, 4, res.Errors[0].Row)
	assert.Equal(t, 5, res.Errors[1].Row)
	assert.Equal(t, 6, res.Errors[2].Row)

	var anita model.StudentModel
	require.NoError(t, db.First(&anita, "roll_number = ?", "C001").Error)
	assert.Equal(t, "anita@csms.test", anita.Email)
	assert.Equal(t, constants.StudentStatusActive, anita.Status)
	assert.NotEqual(t, "pw1", anita.Password)

	buf, err := svc.Export(context.Background(), studentRepo.StudentFilter{DepartmentID: &dept.ID})
	require.NoError(t, err)

	out, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer out.Close()
	rows, err := out.GetRows("Students")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, service.ExportHeader, rows[0])

	rolls := map[string]string{}
	for _, r := range rows[1:] {
		rolls[r[0]] = r[4]
	}
	assert.Equal(t, map[string]string{"C000": "CIV", "C001": "CIV", "C002": "CIV"}, rolls)
}

func TestRosterImportRejectsGarbage(t *testing.T) {
	db := testkit.NewDB(t)
	_, err := service.NewRosterService(db).Import(context.Background(), bytes.NewReader([]byte("not a workbook")), uuid.New(), nil)
	assert.ErrorIs(t, err, service.ErrInvalidSpreadsheet)
}

func TestRosterImportStorageFailure(t *testing.T) {
	db := testkit.NewDB(t)
	wb := buildWorkbook(t, [][]interface{}{
		{"Roll Number", "Name", "Email", "Password"},
		{"C001", "Anita", "anita@csms.test", "pw1"},
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = service.NewRosterService(db).Import(context.Background(), wb, uuid.New(), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidSpreadsheet)
}

func TestRosterImportCanceledLeavesNothing(t *testing.T) {
	db := testkit.NewDB(t)
	rows := [][]interface{}{{"Roll Number", "Name", "Email", "Password"}}
	for i := 0; i < 20; i++ {
		rows = append(rows, []interface{}{fmt.Sprintf("C%03d", i), "Student", fmt.Sprintf("s%d@csms.test", i), "pw"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := service.NewRosterService(db).Import(ctx, buildWorkbook(t, rows), uuid.New(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var n int64
	require.NoError(t, db.Model(&model.StudentModel{}).Count(&n).Error)
	assert.Zero(t, n)
}
