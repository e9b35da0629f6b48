package academics

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	departmentModel "csms_backend/internals/features/academics/departments/model"
	sectionModel "csms_backend/internals/features/academics/sections/model"

	"gorm.io/gorm"
)

type DepartmentSeed struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type SectionSeed struct {
	Name           string `json:"name"`
	DepartmentCode string `json:"department_code"`
}

// SeedDepartmentsFromJSON: lewati department yang code-nya sudah ada.
func SeedDepartmentsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)
	var seeds []DepartmentSeed
	if err := readJSON(filePath, &seeds); err != nil {
		return err
	}

	for _, s := range seeds {
		code := strings.ToUpper(strings.TrimSpace(s.Code))
		var n int64
		if err := db.Model(&departmentModel.DepartmentModel{}).Where("code = ?", code).Count(&n).Error; err != nil {
			return fmt.Errorf("check department %s: %w", code, err)
		}
		if n > 0 {
			log.Printf("ℹ️ Department %s sudah ada, lewati...", code)
			continue
		}
		d := departmentModel.DepartmentModel{Name: s.Name, Code: code}
		if err := db.Create(&d).Error; err != nil {
			return fmt.Errorf("insert department %s: %w", code, err)
		}
		log.Printf("✅ Berhasil insert department %s", code)
	}
	return nil
}

// SeedSectionsFromJSON: department dicari lewat code; nama section unik per department.
func SeedSectionsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)
	var seeds []SectionSeed
	if err := readJSON(filePath, &seeds); err != nil {
		return err
	}

	for _, s := range seeds {
		var dept departmentModel.DepartmentModel
		if err := db.Where("code = ?", strings.ToUpper(s.DepartmentCode)).First(&dept).Error; err != nil {
			return fmt.Errorf("section %s: department %s: %w", s.Name, s.DepartmentCode, err)
		}
		var n int64
		if err := db.Model(&sectionModel.SectionModel{}).
			Where("name = ? AND department_id = ?", s.Name, dept.ID).
			Count(&n).Error; err != nil {
			return fmt.Errorf("check section %s: %w", s.Name, err)
		}
		if n > 0 {
			log.Printf("ℹ️ Section %s sudah ada, lewati...", s.Name)
			continue
		}
		sec := sectionModel.SectionModel{Name: s.Name, DepartmentID: dept.ID}
		if err := db.Create(&sec).Error; err != nil {
			return fmt.Errorf("insert section %s: %w", s.Name, err)
		}
		log.Printf("✅ Berhasil insert section %s", s.Name)
	}
	return nil
}

func readJSON(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
