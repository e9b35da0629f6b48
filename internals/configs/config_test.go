package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTokenTTL(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"12h", 12 * time.Hour},
		{"90m", 90 * time.Minute},
		{"3600", time.Hour},
		{" 1d ", 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := ParseTokenTTL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "xd", "soon"} {
		_, err := ParseTokenTTL(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{JWTSecret: "s", TokenTTL: time.Hour}
	assert.NoError(t, cfg.Validate())

	cfg.JWTSecret = "  "
	assert.EqualError(t, cfg.Validate(), "JWT_SECRET is not set")

	cfg = &Config{JWTSecret: "s"}
	assert.Error(t, cfg.Validate())
}

// Load dijalankan dari direktori sementara supaya .env lokal tidak ikut terbaca.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadPrecedence(t *testing.T) {
	dir := chdirTemp(t)

	yamlPath := filepath.Join(dir, "csms.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
app_env: staging
port: "9000"
jwt_secret: from-yaml
jwt_expire: 2h
rate_limit_max: 50
cors_origins:
  - https://yaml.example
oss:
  bucket: yaml-bucket
`), 0o600))

	t.Setenv("CSMS_CONFIG", yamlPath)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RATE_LIMIT_MAX", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.AppEnv)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 50, cfg.RateLimitMax)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "yaml-bucket", cfg.OSS.Bucket)
	assert.False(t, cfg.OSS.Enabled())
	assert.Equal(t, "30 3 * * *", cfg.NotificationRetentionCron)
	assert.False(t, cfg.IsProduction())
}

func TestLoadErrors(t *testing.T) {
	dir := chdirTemp(t)

	t.Setenv("CSMS_CONFIG", filepath.Join(dir, "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("CSMS_CONFIG", "")
	t.Setenv("JWT_SECRET", "x")
	t.Setenv("JWT_EXPIRE", "forever")
	_, err = Load()
	assert.ErrorContains(t, err, "JWT_EXPIRE")
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "csms"}
	assert.Equal(t, "postgres://u:p@h:5432/csms?sslmode=disable&application_name=csms", cfg.DSN())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.DSN())
}
