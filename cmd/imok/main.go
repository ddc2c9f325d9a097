package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/imok-app/imok/internal/api"
	"github.com/imok-app/imok/internal/config"
	"github.com/imok-app/imok/internal/db"
	"github.com/imok-app/imok/internal/logger"
	"github.com/imok-app/imok/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	location := mustLoadLocation(cfg.TZ, log)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	store := services.NewStateStore(db.NewDocumentRepository(database), log, location, nil)
	store.Load()

	notifier := services.NewNotificationService(store, services.NewLogScheduler(log), log)
	handler := api.NewHandler(api.Dependencies{
		Store:     store,
		CheckIns:  services.NewCheckInService(store),
		Profiles:  services.NewProfileService(store),
		Contacts:  services.NewContactService(store),
		Schedule:  services.NewScheduleService(store),
		Notifier:  notifier,
		Log:       log,
		SecretKey: []byte(cfg.SecretKey),
		BaseURL:   cfg.AppBaseURL,
	})

	app := fiber.New(fiber.Config{
		AppName:               "Imok",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	notifier.Start(lifecycleCtx)
	notifier.Resync(store.Snapshot())

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("imok listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("db", cfg.DBPath),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func mustLoadLocation(name string, log *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}
