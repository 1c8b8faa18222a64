package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/zoobzio/clockz"

	_ "github.com/ridwanfathin/claw-dashboard-service/docs"
	"github.com/ridwanfathin/claw-dashboard-service/internal/config"
	"github.com/ridwanfathin/claw-dashboard-service/internal/database"
	"github.com/ridwanfathin/claw-dashboard-service/internal/handler"
	"github.com/ridwanfathin/claw-dashboard-service/internal/logger"
	"github.com/ridwanfathin/claw-dashboard-service/internal/monitor"
	"github.com/ridwanfathin/claw-dashboard-service/internal/notify"
	"github.com/ridwanfathin/claw-dashboard-service/internal/repository"
	"github.com/ridwanfathin/claw-dashboard-service/internal/server"
	"github.com/ridwanfathin/claw-dashboard-service/internal/service"
	"github.com/ridwanfathin/claw-dashboard-service/internal/storecache"
	"github.com/ridwanfathin/claw-dashboard-service/internal/upstream"
)

// @title Claw Dashboard Service API
// @version 1.0
// @description Store owner dashboard backend: upstream proxy, revenue reports, and machine health.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(&logger.Config{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 14,
		Compress:   true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	clock := clockz.RealClock

	upstreamClient := upstream.NewClient(&upstream.Config{
		BaseURL: cfg.UpstreamBaseURL,
		APIKey:  cfg.UpstreamAPIKey,
		Timeout: cfg.UpstreamTimeout,
	})

	var snapshots repository.ReportSnapshotRepository
	if cfg.PostgresDBURL != "" {
		db, err := database.NewPostgresDB(context.Background(), cfg.PostgresDBURL)
		if err != nil {
			appLog.WithError(err).Warn("database unavailable, report history disabled")
		} else {
			defer db.Close()
			snapshots = repository.NewPostgresReportRepository(db.GetPool())
			appLog.Info("report history enabled")
		}
	}

	fetcher := service.NewPaymentsFetcher(upstreamClient, cfg.PageSize, cfg.MaxConcurrentPages)
	reportService := service.NewReportService(fetcher, snapshots, clock, appLog)

	storeCache := storecache.New[json.RawMessage](cfg.StoreCacheTTL, clock, appLog)

	var (
		machineMonitor *monitor.Monitor
		machineHandler = handler.NewMachineHandler(nil)
	)
	if cfg.MonitorEnabled && upstreamClient.HasAPIKey() && len(cfg.MonitorStoreIDs) > 0 {
		notifier := notify.New(cfg.TelegramBotToken, cfg.TelegramChatIDs, appLog)
		machineMonitor = monitor.New(upstreamClient, notifier, clock, appLog, monitor.Config{
			StoreIDs:     cfg.MonitorStoreIDs,
			Interval:     cfg.MonitorInterval,
			OfflineAfter: cfg.OfflineAfter,
			PlayPrice:    cfg.PlayPrice,
			Location:     cfg.Timezone(),
		})
		machineHandler = handler.NewMachineHandler(machineMonitor)
	}

	appServer := server.NewServer(cfg, server.Handlers{
		Proxy:    handler.NewProxyHandler(upstreamClient, appLog),
		Reports:  handler.NewReportHandler(reportService, appLog),
		Stores:   handler.NewStoreHandler(upstreamClient, storeCache, appLog),
		Machines: machineHandler,
		Banks:    handler.NewBankHandler(),
	}, clock, appLog)

	if machineMonitor != nil {
		machineMonitor.Start()
		appServer.AddBackground(machineMonitor)
	}
	appServer.AddBackground(storeCache)

	if err := appServer.Start(); err != nil {
		appLog.WithError(err).Error("server error")
	}

	appLog.Info("server shutdown complete")
}
