package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mamadbah2/gildedrose/internal/config"
	"github.com/mamadbah2/gildedrose/internal/inventory"
	"github.com/mamadbah2/gildedrose/internal/repository"
	"github.com/mamadbah2/gildedrose/internal/repository/cache"
	"github.com/mamadbah2/gildedrose/internal/repository/memory"
	"github.com/mamadbah2/gildedrose/internal/repository/mongodb"
	"github.com/mamadbah2/gildedrose/internal/repository/sheets"
	"github.com/mamadbah2/gildedrose/internal/scheduler"
	"github.com/mamadbah2/gildedrose/internal/server/handlers"
	"github.com/mamadbah2/gildedrose/internal/server/router"
	"github.com/mamadbah2/gildedrose/internal/service/stock"
	whatsappsvc "github.com/mamadbah2/gildedrose/internal/service/whatsapp"
	whatsappclient "github.com/mamadbah2/gildedrose/pkg/clients/whatsapp"
	"github.com/mamadbah2/gildedrose/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	loc, err := cfg.Location()
	if err != nil {
		baseLogger.Fatal("invalid timezone", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo repository.Repository
	if cfg.MongoDB.URI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		mongoRepo, err := mongodb.NewMongoDBRepository(connectCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		cancel()
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		repo = mongoRepo
		baseLogger.Info("using mongodb inventory store", zap.String("db", cfg.MongoDB.DBName))
	} else {
		repo = memory.NewRepository()
		baseLogger.Warn("MONGODB_URI not set, inventory is kept in memory")
	}

	var guard stock.Guard
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			baseLogger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		guard = cache.NewRedisGuard(rdb)
		baseLogger.Info("daily tick guard enabled", zap.String("redis", cfg.Redis.Addr))
	}

	var exporter stock.Exporter
	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exporter = sheets.NewExporter(sheetsRepo)
		baseLogger.Info("sheets export enabled")
	}

	stockSvc := stock.NewService(repo, guard, exporter, loc, baseLogger.Named("svc.stock"))

	if cfg.Inventory.SeedOnStart {
		if _, err := stockSvc.Seed(ctx, inventory.FixtureItems()); err != nil {
			baseLogger.Fatal("failed to seed inventory", zap.Error(err))
		}
	}

	var messagingSvc whatsappsvc.MessagingService
	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		messagingSvc = whatsappsvc.NewMetaWhatsAppService(cfg.WhatsApp, whatsClient, baseLogger.Named("svc.whatsapp"))
		baseLogger.Info("whatsapp reports enabled")
	} else {
		baseLogger.Warn("whatsapp not configured, daily reports disabled")
	}

	inventoryHandler := handlers.NewInventoryHandler(stockSvc, messagingSvc, baseLogger.Named("handlers.inventory"))
	engine := router.New(inventoryHandler, baseLogger.Named("router"))

	sched, err := scheduler.NewScheduler(cfg.Reporting, stockSvc, messagingSvc, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
