package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"MacdRadar/internal/alert"
	"MacdRadar/internal/calculator"
	"MacdRadar/internal/collector"
	"MacdRadar/internal/config"
	"MacdRadar/internal/logging"
	"MacdRadar/internal/notifier"
	"MacdRadar/internal/recorder"
	"MacdRadar/internal/scanner"
	"MacdRadar/internal/scheduler"
	"MacdRadar/internal/server"
	"MacdRadar/internal/session"
)

func main() {
	// A .env file is optional; deployments set real environment variables.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("config validation: %v", err)
	}
	if err := logging.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		logrus.Fatalf("init logging: %v", err)
	}
	logrus.Info("MacdRadar starting...")

	// Data source
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	logrus.Infof("data source: %s", fetcher.Name())

	// Telegram notifier
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	} else {
		logrus.Warn("telegram credentials not set, alerts disabled")
	}

	// Scan history
	var rec recorder.Recorder
	if cfg.Database.Path != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.Path)
		if err != nil {
			logrus.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc := scanner.New(fetcher, scanner.Options{
		Universe:       cfg.Scanner.Symbols,
		IntradayBucket: cfg.IntradayBucket(),
		PacingDelay:    cfg.PacingDelay(),
		MACD: calculator.MACDParams{
			Fast:        cfg.EMA.Fast,
			Slow:        cfg.EMA.Slow,
			Signal:      cfg.EMA.Signal,
			MinimumBars: cfg.Scanner.MinimumBars,
		},
	})

	// A nil *TelegramNotifier must stay a nil interface so the alert
	// manager treats it as disabled.
	var alertSink alert.Notifier
	if tn != nil {
		alertSink = tn
	}
	am := alert.NewManager(alertSink, cfg.NotifyCooldown(), cfg.Location())

	st := session.New(cfg.Scanner.AutoRefresh, cfg.Scanner.NotificationsEnabled, cfg.TelegramEnabled(), len(cfg.Scanner.Symbols))

	sched := scheduler.NewScheduler(ctx, sc, am, st, rec, cfg.RefreshInterval(), cfg.Location())
	sched.Start()
	defer sched.Stop()

	// Telegram command polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		logrus.Info("telegram polling started")
	}

	// HTTP API
	srv := server.New(cfg.Server.ListenAddr, sched)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("http server: %v", err)
		}
	}()

	if cfg.Scanner.RunOnStart {
		logrus.Info("run_on_start enabled, scanning now")
		if err := sched.TriggerScan(); err != nil {
			logrus.Warnf("startup scan: %v", err)
		}
	}

	logrus.Info("MacdRadar is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logrus.Info("shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Warnf("http shutdown: %v", err)
	}
	logrus.Info("MacdRadar stopped")
}
