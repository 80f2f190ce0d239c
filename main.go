package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-standings/internal/config"
	"github.com/mauv0809/league-standings/internal/database"
	server "github.com/mauv0809/league-standings/internal/http"
	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/metrics"
	"github.com/mauv0809/league-standings/internal/notifier/slack"
	"github.com/mauv0809/league-standings/internal/pubsub"
	"github.com/mauv0809/league-standings/internal/refresh"
	"github.com/mauv0809/league-standings/internal/scheduler"
	"github.com/mauv0809/league-standings/internal/standings"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	leagueStore := league.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	if !cfg.Slack.Enabled() {
		log.Warn("SLACK_BOT_TOKEN or SLACK_CHANNEL_ID not set, Slack messages are only logged")
	}
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)

	var publisher pubsub.PubSubClient
	if cfg.ProjectID != "" {
		publisher = pubsub.New(cfg.ProjectID)
	} else {
		publisher = pubsub.NewDisabled()
	}

	coordinator := refresh.New(leagueStore, publisher, metricsSvc, standings.Options{
		Points: cfg.Standings.Points,
		Zones:  cfg.Standings.Zones,
	})

	sched := scheduler.New()
	if err := sched.AddJob(scheduler.NewRefreshJob(coordinator, cfg.Refresh.Schedule)); err != nil {
		log.Fatalf("Failed to schedule standings refresh: %s", err)
	}

	s := server.NewServer(
		leagueStore,
		metricsSvc,
		metricsHandler,
		cfg,
		notifier,
		coordinator,
		publisher,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// Warm the retained tables before serving.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := coordinator.RefreshAll(warmCtx); err != nil {
		log.Warn("Initial standings refresh incomplete", "error", err)
	}
	warmCancel()
	sched.Start()

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	sched.Stop()
	log.Info("Server process shutting down")
}
