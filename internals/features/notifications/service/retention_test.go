package service_test

import (
	"context"
	"testing"
	"time"

	"csms_backend/internals/features/notifications/model"
	"csms_backend/internals/features/notifications/service"
	"csms_backend/internals/testkit"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurge(t *testing.T) {
	db := testkit.NewDB(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	poster := uuid.New()

	for _, age := range []time.Duration{time.Hour, 10 * 24 * time.Hour, 40 * 24 * time.Hour} {
		n := model.NotificationModel{Title: "t", Message: "m", PostedBy: poster, CreatedAt: now.Add(-age)}
		require.NoError(t, db.Create(&n).Error)
	}

	deleted, err := service.Purge(context.Background(), db, 30*24*time.Hour, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var left int64
	require.NoError(t, db.Model(&model.NotificationModel{}).Count(&left).Error)
	assert.EqualValues(t, 2, left)

	deleted, err = service.Purge(context.Background(), db, 0, now)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestStartRetentionDisabled(t *testing.T) {
	cfg := testkit.Config()
	c, err := service.StartRetention(nil, cfg)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestStartRetentionBadSchedule(t *testing.T) {
	cfg := testkit.Config()
	cfg.NotificationRetentionDays = 30
	cfg.NotificationRetentionCron = "not a cron"
	_, err := service.StartRetention(nil, cfg)
	assert.Error(t, err)
}
