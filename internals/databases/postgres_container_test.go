//go:build container
// +build container

package database_test

import (
	"context"
	"testing"
	"time"

	"csms_backend/internals/configs"
	database "csms_backend/internals/databases"
	departmentModel "csms_backend/internals/features/academics/departments/model"
	teacherModel "csms_backend/internals/features/users/teachers/model"
	helper "csms_backend/internals/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
)

// Jalankan dengan: go test -tags container ./internals/databases/...
func startPostgres(t *testing.T) *configs.Config {
	t.Helper()
	ctx := context.Background()

	pg, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "csms",
				"POSTGRES_PASSWORD": "csms",
				"POSTGRES_DB":       "csms",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	host, err := pg.Host(ctx)
	require.NoError(t, err)
	port, err := pg.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return &configs.Config{
		AppEnv:     "test",
		DBHost:     host,
		DBPort:     port.Port(),
		DBUser:     "csms",
		DBPassword: "csms",
		DBName:     "csms",
		DBSSLMode:  "disable",
		JWTSecret:  "x",
		TokenTTL:   time.Hour,
	}
}

func TestPostgresMigrateAndConstraints(t *testing.T) {
	cfg := startPostgres(t)

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, database.Ping(ctx, db))

	// migrate kedua kali tidak boleh gagal
	require.NoError(t, database.AutoMigrate(db))

	dept := departmentModel.DepartmentModel{Name: "Computer Science", Code: "CSE"}
	require.NoError(t, db.Create(&dept).Error)

	dup := departmentModel.DepartmentModel{Name: "Copy", Code: "CSE"}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, helper.IsUniqueViolation(err), err.Error())

	exp := 5
	teacher := teacherModel.TeacherModel{
		Name:         "Dr. Rao",
		TeacherID:    "TCH100",
		Email:        "rao@csms.test",
		Password:     "hash",
		DepartmentID: dept.ID,
		Subjects:     datatypes.JSONSlice[string]{"Networks", "Compilers"},
		Experience:   &exp,
	}
	require.NoError(t, db.Create(&teacher).Error)

	var got teacherModel.TeacherModel
	require.NoError(t, db.First(&got, "id = ?", teacher.ID).Error)
	assert.Equal(t, []string{"Networks", "Compilers"}, []string(got.Subjects))
}
