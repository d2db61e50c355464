package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hybrid-command-router/config"
	_ "hybrid-command-router/docs" // Swagger docs
	"hybrid-command-router/internal/command/usecase"
	"hybrid-command-router/internal/device"
	"hybrid-command-router/internal/httpserver"
	"hybrid-command-router/internal/intent"
	"hybrid-command-router/internal/merge"
	"hybrid-command-router/internal/offline"
	"hybrid-command-router/internal/stats"
	"hybrid-command-router/pkg/datemath"
	"hybrid-command-router/pkg/kvstore"
	"hybrid-command-router/pkg/log"
	"hybrid-command-router/pkg/remote"
	"hybrid-command-router/pkg/speech"
)

// @title       Hybrid Command Router API
// @description Voice-command routing between on-device handlers and remote processing, with response merging.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Hybrid Command Router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Collaborators
	deviceReader := device.NewStaticReader(device.StaticReader{
		Battery:       cfg.Device.BatteryLevel,
		LowPower:      cfg.Device.LowPowerMode,
		NetworkDown:   cfg.Device.NetworkDown,
		LocaleTag:     cfg.Device.Locale,
		Brightness:    cfg.Device.Brightness,
		Volume:        cfg.Device.Volume,
		Model:         cfg.Device.ModelName,
		StorageFreeGB: cfg.Device.StorageFreeGB,
	})

	timezone := cfg.Engine.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	registry, err := offline.NewRegistry(offline.Deps{
		Device: deviceReader,
		Dates:  dates,
	})
	if err != nil {
		logger.Error(ctx, "Failed to build offline handler registry: ", err)
		return
	}

	store, err := kvstore.NewFileStore(cfg.Stats.StorePath)
	if err != nil {
		logger.Error(ctx, "Failed to open statistics store: ", err)
		return
	}
	tracker := stats.NewTracker(store)
	if err := tracker.Load(ctx); err != nil {
		logger.Warnf(ctx, "Could not load persisted statistics: %v", err)
	}

	processors, err := remote.InitializeProcessors(&cfg.Remote)
	if err != nil {
		logger.Error(ctx, "Failed to initialize remote processors: ", err)
		return
	}
	remoteMgr := remote.NewManager(processors, remote.ManagerConfigFrom(&cfg.Remote), logger)

	transcriber := speech.NewHTTPTranscriber(cfg.Speech.BaseURL, cfg.Speech.APIKey)

	// 4. Command UseCase
	commandUC := usecase.New(
		logger,
		intent.NewClassifier(),
		registry,
		merge.NewMerger(),
		tracker,
		deviceReader,
		remoteMgr,
		transcriber,
		cfg.Engine,
	)

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AppConfig:   cfg,
		CommandUC:   commandUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
