package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"konvert/internal/adapters/coingecko"
	"konvert/internal/adapters/config"
	"konvert/internal/adapters/errors/noop"
	"konvert/internal/adapters/errors/sentry"
	"konvert/internal/adapters/telegram"
	"konvert/internal/metrics"
	"konvert/internal/repository/memory"
	"konvert/internal/services/converter"
	"konvert/internal/services/deposit"
	"konvert/internal/services/dialog"
	"konvert/pkg/errors"
	"konvert/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)

	metrics.Init()

	// Wiring: quote client -> engines -> session store -> dialogue -> bot
	rateSource := coingecko.NewClient(coingecko.Config{
		BaseURL:     cfg.CoinGecko.BaseURL,
		HTTPTimeout: cfg.CoinGecko.HTTPTimeout,
	}, log)

	converterSvc := converter.NewService(rateSource, log)
	depositSvc := deposit.NewService(log)
	sessionStore := memory.NewSessionStore()
	dialogSvc := dialog.NewService(sessionStore, converterSvc, depositSvc, log)

	bot, err := telegram.NewBot(telegram.Config{
		Token:          cfg.Telegram.BotToken,
		Debug:          cfg.App.Debug,
		UpdateTimeout:  cfg.Telegram.UpdateTimeout,
		HTTPTimeout:    cfg.Telegram.HTTPTimeout,
		RateLimitRate:  cfg.Telegram.RateLimitRate,
		RateLimitBurst: cfg.Telegram.RateLimitBurst,
	}, log)
	if err != nil {
		log.Fatalf("Failed to create telegram bot: %v", err)
	}

	handler := telegram.NewHandler(bot, dialogSvc, log)
	handler.Register()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Metrics.Enabled {
		startMetricsServer(cfg.Metrics.Addr, log)
	}

	go func() {
		if err := bot.Start(ctx); err != nil {
			log.Fatalf("Telegram bot stopped with error: %v", err)
		}
	}()

	log.Info("System initialized successfully")

	waitForShutdown(ctx, cancel, errorTracker, log)
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Info("Error tracking disabled")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}

// startMetricsServer serves Prometheus metrics and the health probe
func startMetricsServer(addr string, log *logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	go func() {
		log.Infof("Metrics server listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Errorf("Metrics server failed: %v", err)
		}
	}()
}

// waitForShutdown waits for a shutdown signal and flushes pending state
func waitForShutdown(ctx context.Context, cancel context.CancelFunc, errorTracker errors.Tracker, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down...")

	cancel()

	if errorTracker != nil {
		if err := errorTracker.Flush(ctx); err != nil {
			log.Warnf("Failed to flush error tracker: %v", err)
		}
	}

	log.Info("Shutdown complete")
}
