package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"csms_backend/internals/configs"
	database "csms_backend/internals/databases"
	notificationService "csms_backend/internals/features/notifications/service"
	authService "csms_backend/internals/features/users/auth/service"
	ossHelper "csms_backend/internals/helpers/oss"
	middlewares "csms_backend/internals/middlewares"
	"csms_backend/internals/middlewares/logger"
	routes "csms_backend/internals/route"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("[FATAL] config: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             10 * 1024 * 1024, // base64 image/sertifikat
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.RequestID(5 * time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(middlewares.RecoveryMiddleware(!cfg.IsProduction()))
	app.Use(middlewares.CorsMiddleware(cfg.CORSOrigins))

	// 🔌 DB connect + migrate + warm-up
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	database.WarmUp(db)

	limits := middlewares.RateLimits{
		GlobalMax: cfg.RateLimitMax,
		LoginMax:  cfg.LoginRateLimitMax,
	}
	if cfg.RedisURL != "" {
		store, err := middlewares.NewRedisStorageFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("[WARN] redis unavailable, limiter falls back to memory: %v", err)
		} else {
			limits.Storage = store
			defer store.Close()
		}
	}

	var blob ossHelper.BlobService = ossHelper.DisabledBlobService{}
	if cfg.OSS.Enabled() {
		svc, err := ossHelper.NewOSSService(cfg.OSS, "csms")
		if err != nil {
			log.Printf("[WARN] OSS init failed, uploads disabled: %v", err)
		} else {
			blob = ossHelper.NewOSSBlobService(svc)
		}
	}

	// ⏱ scheduler setelah DB siap
	retention, err := notificationService.StartRetention(db, cfg)
	if err != nil {
		log.Fatalf("[FATAL] retention: %v", err)
	}

	routes.SetupRoutes(app, db, routes.Deps{
		Config: cfg,
		Tokens: authService.NewTokenService(cfg),
		Blob:   blob,
		Limits: limits,
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if retention != nil {
		<-retention.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
