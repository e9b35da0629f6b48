package seeds

import (
	"path/filepath"

	"csms_backend/internals/seeds/academics"
	"csms_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// DefaultDataDir relatif terhadap root repo.
const DefaultDataDir = "internals/seeds/data"

// RunAllSeeds idempotent: data yang sudah ada dilewati.
func RunAllSeeds(db *gorm.DB, dataDir string) error {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	//* Academics
	if err := academics.SeedDepartmentsFromJSON(db, filepath.Join(dataDir, "departments.json")); err != nil {
		return err
	}
	if err := academics.SeedSectionsFromJSON(db, filepath.Join(dataDir, "sections.json")); err != nil {
		return err
	}

	//* Users
	return users.SeedUsersFromJSON(db, filepath.Join(dataDir, "users.json"))
}
