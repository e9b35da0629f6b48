package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"

	authService "csms_backend/internals/features/users/auth/service"
	"csms_backend/internals/features/users/students/model"
	studentRepo "csms_backend/internals/features/users/students/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const rosterSheet = "Students"

// Kolom import: A roll number, B name, C email, D password, E phone.
var ImportHeader = []string{"Roll Number", "Name", "Email", "Password", "Phone"}

var ExportHeader = []string{
	"Roll Number", "Name", "Email", "Phone", "Department", "Section",
	"Status", "At Risk", "Backlog Count", "Guardian Name", "Guardian Phone",
}

type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"`
	Errors   []RowError `json:"errors"`
}

// ErrInvalidSpreadsheet: file bukan xlsx yang bisa dibaca. Hanya error ini
// yang berarti kesalahan input; sisanya error storage/timeout.
var ErrInvalidSpreadsheet = errors.New("invalid spreadsheet")

const importBatchSize = 100

type RosterService struct {
	DB *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{DB: db}
}

type importRow struct {
	rowNo    int
	roll     string
	name     string
	email    string
	password string
	phone    string
}

// Import membaca sheet pertama, baris 1 = header. Baris bermasalah dicatat
// dan dilewati; baris valid di-insert dalam satu transaksi, jadi import
// yang gagal tidak meninggalkan data setengah jadi.
func (s *RosterService) Import(ctx context.Context, r io.Reader, departmentID uuid.UUID, sectionID *uuid.UUID) (*ImportResult, error) {
	rows, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{Errors: []RowError{}}
	skip := func(rowNo int, reason string) {
		res.Errors = append(res.Errors, RowError{Row: rowNo, Reason: reason})
	}

	// 1) validasi isi file
	candidates := make([]importRow, 0, len(rows))
	seen := map[string]bool{}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		ir := importRow{
			rowNo:    i + 1,
			roll:     cell(0),
			name:     cell(1),
			email:    strings.ToLower(cell(2)),
			password: cell(3),
			phone:    cell(4),
		}
		if ir.roll == "" && ir.name == "" && ir.email == "" {
			continue // baris kosong
		}
		if ir.roll == "" || ir.name == "" || ir.email == "" || ir.password == "" {
			skip(ir.rowNo, "roll number, name, email and password are required")
			continue
		}
		if seen["e:"+ir.email] || seen["r:"+ir.roll] {
			skip(ir.rowNo, "duplicate email or roll number in file")
			continue
		}
		seen["e:"+ir.email], seen["r:"+ir.roll] = true, true
		candidates = append(candidates, ir)
	}

	// 2) duplikat terhadap database, satu query
	if len(candidates) > 0 {
		emails := make([]string, len(candidates))
		rolls := make([]string, len(candidates))
		for i, c := range candidates {
			emails[i], rolls[i] = c.email, c.roll
		}
		takenEmails, takenRolls, err := studentRepo.TakenEmailsAndRolls(ctx, s.DB, emails, rolls)
		if err != nil {
			return nil, fmt.Errorf("check existing students: %w", err)
		}
		fresh := candidates[:0]
		for _, c := range candidates {
			if takenEmails[c.email] || takenRolls[c.roll] {
				skip(c.rowNo, "student with this email or roll number already exists")
				continue
			}
			fresh = append(fresh, c)
		}
		candidates = fresh
	}

	// 3) bcrypt paralel
	students, err := hashRows(ctx, candidates, departmentID, sectionID)
	if err != nil {
		return nil, err
	}

	// 4) insert all-or-nothing
	if len(students) > 0 {
		err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.CreateInBatches(&students, importBatchSize).Error
		})
		if err != nil {
			return nil, fmt.Errorf("insert students: %w", err)
		}
	}

	sort.SliceStable(res.Errors, func(i, j int) bool { return res.Errors[i].Row < res.Errors[j].Row })
	res.Imported = len(students)
	res.Skipped = len(res.Errors)
	log.Printf("[INFO] roster import: imported=%d skipped=%d", res.Imported, res.Skipped)
	return res, nil
}

func readSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpreadsheet, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[WARN] close excel: %v", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no sheets", ErrInvalidSpreadsheet)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrInvalidSpreadsheet, sheetName, err)
	}
	return rows, nil
}

func hashRows(ctx context.Context, rows []importRow, departmentID uuid.UUID, sectionID *uuid.UUID) ([]model.StudentModel, error) {
	students := make([]model.StudentModel, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, ir := range rows {
		i, ir := i, ir
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hash, err := authService.HashPassword(ir.password)
			if err != nil {
				return fmt.Errorf("hash password row %d: %w", ir.rowNo, err)
			}
			students[i] = model.StudentModel{
				Name:         ir.name,
				RollNumber:   ir.roll,
				Email:        ir.email,
				Password:     hash,
				DepartmentID: departmentID,
				SectionID:    sectionID,
				Phone:        ir.phone,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return students, nil
}

// Export menulis roster sesuai filter ke workbook xlsx.
func (s *RosterService) Export(ctx context.Context, filter studentRepo.StudentFilter) (*bytes.Buffer, error) {
	list, err := studentRepo.List(ctx, s.DB, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[WARN] close excel: %v", err)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), rosterSheet); err != nil {
		return nil, err
	}
	if err := writeRow(f, 1, toCells(ExportHeader)); err != nil {
		return nil, err
	}
	for i, st := range list {
		if err := writeRow(f, i+2, exportCells(st)); err != nil {
			return nil, err
		}
	}
	if err := f.SetPanes(rosterSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func exportCells(st model.StudentModel) []interface{} {
	dept, section := "", ""
	if st.Department != nil {
		dept = st.Department.Code
	}
	if st.Section != nil {
		section = st.Section.Name
	}
	atRisk := "No"
	if st.AtRisk {
		atRisk = "Yes"
	}
	return []interface{}{
		st.RollNumber, st.Name, st.Email, st.Phone, dept, section,
		st.Status, atRisk, strconv.Itoa(st.BacklogCount), st.GuardianName, st.GuardianPhone,
	}
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func writeRow(f *excelize.File, row int, cells []interface{}) error {
	addr, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(rosterSheet, addr, &cells)
}
