package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nginx-monitor/internal/aggregators"
	"nginx-monitor/internal/collectors"
	internalhttp "nginx-monitor/internal/http"
	"nginx-monitor/internal/parsers"
	"nginx-monitor/internal/publishers"
	"nginx-monitor/internal/schedulers"
	"nginx-monitor/internal/shared/configs"
	"nginx-monitor/internal/shared/filestorages"
	"nginx-monitor/internal/shared/logfiles"
	"nginx-monitor/internal/shared/loggers"
	"nginx-monitor/internal/sources"
	"nginx-monitor/internal/stores"
)

const appName = "nginx-monitor"

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	scheduler        schedulers.RefreshScheduler
	snapshotStore    publishers.SnapshotStore
	filePublisher    publishers.FilePublisher // nil when export is disabled
	backgroundCancel context.CancelFunc
}

// New wires the collection pipeline, the refresh scheduler and the HTTP surface.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Logger()

	// Collection pipeline: tail -> parse -> aggregate
	lineSource := sources.NewLineSource(
		logfiles.NewFileOpener(),
		time.Duration(config.Refresh.TailTimeoutSeconds)*time.Second,
	)
	agentClassifier := parsers.NewAgentClassifier()
	statsAggregator := aggregators.NewStatsAggregator(
		agentClassifier,
		parsers.NewPlatformClassifier(agentClassifier),
		time.Now,
	)
	collector := collectors.NewCollector(
		config.Sources,
		lineSource,
		parsers.NewAccessRecordParser(),
		parsers.NewErrorRecordParser(),
		statsAggregator,
	)

	// Publishers
	snapshotStore := publishers.NewSnapshotStore()
	fanoutTargets := []publishers.Publisher{snapshotStore, publishers.NewMetricsPublisher()}

	var filePublisher publishers.FilePublisher
	if config.Export.Enabled {
		fileStorage, err := filestorages.NewFileStorage(config.Export.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize export storage: %w", err)
		}
		exportLogger := appLogger.With().Str(loggers.FieldComponent, "export").Logger()
		filePublisher = publishers.NewFilePublisher(stores.NewSnapshotFileStore(fileStorage), exportLogger)
		fanoutTargets = append(fanoutTargets, filePublisher)
	}
	publisher := publishers.NewFanout(fanoutTargets...)

	// Scheduler
	initialState := schedulers.StateRunning
	if config.Refresh.Paused {
		initialState = schedulers.StatePaused
	}
	schedulerLogger := appLogger.With().Str(loggers.FieldComponent, "scheduler").Logger()
	scheduler := schedulers.NewRefreshScheduler(
		collector,
		publisher,
		time.Duration(config.Refresh.IntervalSeconds)*time.Second,
		initialState,
		schedulerLogger,
	)

	// HTTP
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(snapshotStore, scheduler, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:        config,
		appLogger:     appLogger,
		server:        server,
		scheduler:     scheduler,
		snapshotStore: snapshotStore,
		filePublisher: filePublisher,
	}, nil
}

// Start starts the refresh scheduler and then serves HTTP in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting %s on port %d (log_level=%s, access_log=%s, error_log=%s, interval=%ds)",
			appName,
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Sources.AccessLogPath,
			app.config.Sources.ErrorLogPath,
			app.config.Refresh.IntervalSeconds)

	app.StartBackground()
	return app.server.ListenAndServe()
}

// StartBackground starts the refresh scheduler without serving HTTP.
func (app *App) StartBackground() {
	collectorLogger := app.appLogger.With().Str(loggers.FieldComponent, "collector").Logger()
	backgroundCtx, cancel := context.WithCancel(collectorLogger.WithContext(context.Background()))
	app.backgroundCancel = cancel

	if app.filePublisher != nil {
		app.filePublisher.Start(backgroundCtx)
	}
	app.scheduler.Start(backgroundCtx)
}

// Handler returns the HTTP handler served by Start.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Stop accepting requests
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel in-flight log reads
	if app.backgroundCancel != nil {
		app.backgroundCancel()
	}

	// 3) Wait for the scheduler; late cycle results are discarded
	app.scheduler.Stop()
	app.appLogger.Info().Msg("Refresh scheduler stopped")

	// 4) Flush the pending snapshot export
	if app.filePublisher != nil {
		app.filePublisher.Stop()
		app.appLogger.Info().Msg("Snapshot export stopped")
	}

	return nil
}
