package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config dibangun sekali saat startup lalu dioper ke konstruktor
// (database, middleware, routes). Tidak ada secret global.
type Config struct {
	AppEnv string `yaml:"app_env"`
	Port   string `yaml:"port"`

	DatabaseURL string `yaml:"database_url"`
	DBHost      string `yaml:"db_host"`
	DBPort      string `yaml:"db_port"`
	DBUser      string `yaml:"db_user"`
	DBPassword  string `yaml:"db_password"`
	DBName      string `yaml:"db_name"`
	DBSSLMode   string `yaml:"db_sslmode"`

	JWTSecret string        `yaml:"jwt_secret"`
	JWTExpire string        `yaml:"jwt_expire"`
	TokenTTL  time.Duration `yaml:"-"`

	CORSOrigins []string `yaml:"cors_origins"`

	RedisURL          string `yaml:"redis_url"`
	RateLimitMax      int    `yaml:"rate_limit_max"`
	LoginRateLimitMax int    `yaml:"login_rate_limit_max"`

	OSS OSSConfig `yaml:"oss"`

	NotificationRetentionDays int    `yaml:"notification_retention_days"`
	NotificationRetentionCron string `yaml:"notification_retention_cron"`
}

type OSSConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	PublicBase string `yaml:"public_base"`
}

func (o OSSConfig) Enabled() bool {
	return o.Endpoint != "" && o.AccessKey != "" && o.SecretKey != "" && o.Bucket != ""
}

// =======================
// DEFAULTS
// =======================

func defaults() *Config {
	return &Config{
		AppEnv:                    "development",
		Port:                      "8000",
		DBSSLMode:                 "disable",
		JWTExpire:                 "7d",
		CORSOrigins:               []string{"http://localhost:3000"},
		RateLimitMax:              300,
		LoginRateLimitMax:         10,
		NotificationRetentionCron: "30 3 * * *",
	}
}

// =======================
// LOADER
// =======================

// Load membaca konfigurasi dengan urutan prioritas:
// file YAML (CSMS_CONFIG) < .env < environment proses.
func Load() (*Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CSMS_CONFIG")); path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, err
		}
		log.Printf("[INFO] config file loaded: %s", path)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using system environment")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	applyEnv(cfg)

	ttl, err := ParseTokenTTL(cfg.JWTExpire)
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRE: %w", err)
	}
	cfg.TokenTTL = ttl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.AppEnv, "APP_ENV")
	setString(&cfg.Port, "PORT")

	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBPort, "DB_PORT")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSLMODE")

	setString(&cfg.JWTSecret, "JWT_SECRET")
	setString(&cfg.JWTExpire, "JWT_EXPIRE")

	if v := GetEnv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}

	setString(&cfg.RedisURL, "REDIS_URL")
	setInt(&cfg.RateLimitMax, "RATE_LIMIT_MAX")
	setInt(&cfg.LoginRateLimitMax, "LOGIN_RATE_LIMIT_MAX")

	setString(&cfg.OSS.Endpoint, "ALI_OSS_ENDPOINT")
	setString(&cfg.OSS.AccessKey, "ALI_OSS_ACCESS_KEY")
	setString(&cfg.OSS.SecretKey, "ALI_OSS_SECRET_KEY")
	setString(&cfg.OSS.Bucket, "ALI_OSS_BUCKET")
	setString(&cfg.OSS.PublicBase, "ALI_OSS_PUBLIC_BASE")

	setInt(&cfg.NotificationRetentionDays, "NOTIFICATION_RETENTION_DAYS")
	setString(&cfg.NotificationRetentionCron, "NOTIFICATION_RETENTION_CRON")
}

// Validate memastikan nilai wajib tersedia.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token lifetime must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// DSN PostgreSQL. DATABASE_URL menang kalau diisi.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	sslmode := c.DBSSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=csms",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, sslmode)
}

// ParseTokenTTL menerima durasi Go ("12h", "90m"), hari ("7d"),
// atau angka detik polos ("3600").
func ParseTokenTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	if strings.HasSuffix(s, "d") {
		n, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(s)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func setString(dst *string, key string) {
	if v := GetEnv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := GetEnv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, keeping %d", key, v, *dst)
		return
	}
	*dst = n
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
