package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"csms_backend/internals/configs"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormConfig dipakai bersama oleh koneksi produksi dan koneksi test.
// FK constraint sengaja tidak dibuat: referensi boleh menggantung.
func GormConfig(cfg *configs.Config) *gorm.Config {
	return &gorm.Config{
		Logger:                                   configs.NewGormLogger(cfg),
		DisableForeignKeyConstraintWhenMigrating: true,
		IgnoreRelationshipsWhenMigrating:         true,
		TranslateError:                           true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Connect membuka koneksi PostgreSQL berdasarkan DSN dari config.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	log.Println("[INFO] connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // aman untuk PgBouncer (transaction pooling)
	}), GormConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := TunePool(db); err != nil {
		return nil, err
	}
	log.Println("[INFO] database connected")
	return db, nil
}

func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

// Ping dipakai oleh health check.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// WarmUp mengisi pool setelah server naik.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := Ping(ctx, db); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
		}
	}()
}
