package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/config"
	"github.com/kailas-cloud/skillmatch/internal/db"
	dbRedis "github.com/kailas-cloud/skillmatch/internal/db/redis"
	logpkg "github.com/kailas-cloud/skillmatch/internal/logger"
	"github.com/kailas-cloud/skillmatch/internal/matcher"
	"github.com/kailas-cloud/skillmatch/internal/metrics"
	analysisrepo "github.com/kailas-cloud/skillmatch/internal/repository/analysis"
	chiTransport "github.com/kailas-cloud/skillmatch/internal/transport/chi"
	healthuc "github.com/kailas-cloud/skillmatch/internal/usecase/health"
	historyuc "github.com/kailas-cloud/skillmatch/internal/usecase/history"
	skilluc "github.com/kailas-cloud/skillmatch/internal/usecase/skill"
	"github.com/kailas-cloud/skillmatch/internal/version"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting skillmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("history_enabled", cfg.Database.Enabled),
	)

	vocab, err := config.LoadVocabulary(cfg.Vocabulary.Path)
	if err != nil {
		logger.Fatal("Invalid skill vocabulary", zap.String("path", cfg.Vocabulary.Path), zap.Error(err))
	}
	m := matcher.New(vocab)

	metrics.RegisterSkillMetrics()
	metrics.VocabularySize.Set(float64(vocab.Len()))
	logger.Info("Vocabulary loaded",
		zap.String("version", vocab.Version()),
		zap.Int("skills", vocab.Len()),
		zap.Int("patterns", m.PatternCount()),
	)

	skillSvc := skilluc.New(vocab, m).
		WithAnalysisDefaults(cfg.Analysis.DefaultReference, cfg.Analysis.MaxTextBytes)

	// Pass nil interfaces (not typed nil pointers) when history is disabled.
	var (
		historyRepo historyuc.Repository
		pinger      healthuc.DBPinger
	)
	if cfg.Database.Enabled {
		store := connectStore(cfg.Database, logger)
		defer store.Close()

		repo := analysisrepo.New(store, cfg.Storage.KeyPrefix, cfg.Analysis.HistoryTTL(), cfg.Analysis.HistoryLimit)
		skillSvc.WithHistory(repo)
		historyRepo = repo
		pinger = store
	}

	historySvc := historyuc.New(historyRepo).
		WithPagination(cfg.Analysis.DefaultPageSize, cfg.Analysis.MaxPageSize)
	healthSvc := healthuc.New(vocab, pinger)

	server := chiTransport.NewServer(skillSvc, historySvc, healthSvc, logger).
		WithSummaryScan(cfg.Analysis.HistoryLimit)
	handler := chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// connectStore opens the history store and waits until it answers pings.
func connectStore(cfg config.DatabaseConfig, logger *zap.Logger) db.Store {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Strings("addrs", cfg.Addrs), zap.Error(err))
	}
	logger.Info("Connected to database", zap.String("driver", cfg.Driver), zap.Strings("addrs", cfg.Addrs))
	return store
}
