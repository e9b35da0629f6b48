package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"csms_backend/internals/configs"
	"csms_backend/internals/features/notifications/model"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Purge menghapus notifikasi yang created_at-nya lebih tua dari retention.
func Purge(ctx context.Context, db *gorm.DB, retention time.Duration, now time.Time) (int64, error) {
	if retention <= 0 {
		return 0, nil
	}
	cutoff := now.Add(-retention)
	res := db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.NotificationModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge notifications: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// StartRetention menjadwalkan Purge. Return nil kalau retention dimatikan (days <= 0).
// Caller wajib Stop() scheduler saat shutdown.
func StartRetention(db *gorm.DB, cfg *configs.Config) (*cron.Cron, error) {
	if cfg.NotificationRetentionDays <= 0 {
		log.Println("[RETENTION] notification retention disabled")
		return nil, nil
	}
	retention := time.Duration(cfg.NotificationRetentionDays) * 24 * time.Hour

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.NotificationRetentionCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		n, err := Purge(ctx, db, retention, time.Now().UTC())
		if err != nil {
			log.Printf("[RETENTION] error: %v", err)
			return
		}
		log.Printf("[RETENTION] purged %d notification(s)", n)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule %q: %w", cfg.NotificationRetentionCron, err)
	}
	log.Printf("[RETENTION] started schedule=%q retention=%dd",
		cfg.NotificationRetentionCron, cfg.NotificationRetentionDays)
	c.Start()
	return c, nil
}
