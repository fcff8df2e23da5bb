package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/hvpham/lexiflash/internal/api"
	"github.com/hvpham/lexiflash/internal/config"
	"github.com/hvpham/lexiflash/internal/db"
	"github.com/hvpham/lexiflash/internal/jobs"
	"github.com/hvpham/lexiflash/internal/logger"
	"github.com/hvpham/lexiflash/internal/repository/sqlite"
	"github.com/hvpham/lexiflash/internal/services"
	"github.com/hvpham/lexiflash/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("LexiFlash Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("import_worker_count=%d", cfg.ImportWorkerCount)
	log.Debug("import_queue_size=%d", cfg.ImportQueueSize)
	log.Debug("session_ttl_minutes=%d", cfg.SessionTTLMinutes)
	log.Debug("max_questions_per_batch=%d", cfg.MaxQuestionsPerBatch)
	log.Debug("default_test_questions=%d", cfg.DefaultTestQuestions)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	deckRepo := sqlite.NewDeckRepository(database.DB)
	settingsRepo := sqlite.NewSettingsRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)

	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)
	importQueue := jobs.NewWorkerQueue(importPool, deckRepo)

	deckService := services.NewDeckService(deckRepo, importQueue)
	learnService := services.NewLearnService(deckRepo, settingsRepo, statsRepo, cfg.MaxQuestionsPerBatch)
	testService := services.NewTestService(deckRepo, settingsRepo, statsRepo, cfg.DefaultTestQuestions)
	settingsService := services.NewSettingsService(settingsRepo)
	statsService := services.NewStatsService(statsRepo)

	srv := &api.Server{
		DeckService:     deckService,
		LearnService:    learnService,
		TestService:     testService,
		SettingsService: settingsService,
		StatsService:    statsService,
		ImportPool:      importPool,
		UploadDir:       cfg.UploadDir,
	}

	ctx, cancel := context.WithCancel(context.Background())
	importPool.Start(ctx)

	// Reap sessions that clients walked away from.
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(5).Minutes().Do(func() {
		if n := learnService.PurgeIdle(sessionTTL); n > 0 {
			log.Info("purged %d idle learn sessions", n)
		}
		if n := testService.PurgeIdle(sessionTTL); n > 0 {
			log.Info("purged %d idle tests", n)
		}
	}); err != nil {
		log.Error("failed to schedule session janitor: %v", err)
		os.Exit(1)
	}
	scheduler.StartAsync()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping session janitor")
	scheduler.Stop()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping import pool")
	importPool.Stop()

	log.Info("===========================================")
	log.Info("LexiFlash Server Stopped")
	log.Info("===========================================")
}
