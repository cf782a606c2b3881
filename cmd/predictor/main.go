package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/parasscreener/nifty-predictor/internal/collector"
	"github.com/parasscreener/nifty-predictor/internal/config"
	"github.com/parasscreener/nifty-predictor/internal/history"
	"github.com/parasscreener/nifty-predictor/internal/notifier"
	"github.com/parasscreener/nifty-predictor/internal/predictor"
	"github.com/parasscreener/nifty-predictor/internal/publisher"
	"github.com/parasscreener/nifty-predictor/internal/recorder"
	"github.com/parasscreener/nifty-predictor/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] nifty-predictor starting...")

	// Load .env if present, then config
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init collector
	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, cfg.DataSource.Days)

	// Init publisher
	pub, err := publisher.NewPublisher(cfg.Output.SiteDir)
	if err != nil {
		log.Fatalf("[FATAL] init publisher: %v", err)
	}

	// Init prediction history log
	hist := history.NewLog(cfg.Output.HistoryFile, cfg.Output.HistoryLimit)

	// Init Telegram notifier (optional)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Noise source: fixed seed reproduces forecasts, 0 uses the wall clock.
	noiseSeed := cfg.Predictor.NoiseSeed
	noise := func() predictor.NoiseSource {
		if noiseSeed != 0 {
			return predictor.NewSeededSource(noiseSeed)
		}
		return predictor.NewClockSource()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, pub, hist, tn, rec, cfg.Predictor.Lookback, noise)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling when configured
	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing daily prediction now")
		go sched.RunNow()
	}

	log.Println("[INFO] nifty-predictor is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] nifty-predictor stopped")
}
