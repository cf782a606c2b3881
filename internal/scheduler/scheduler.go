package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/parasscreener/nifty-predictor/internal/advisor"
	"github.com/parasscreener/nifty-predictor/internal/calculator"
	"github.com/parasscreener/nifty-predictor/internal/collector"
	"github.com/parasscreener/nifty-predictor/internal/history"
	"github.com/parasscreener/nifty-predictor/internal/model"
	"github.com/parasscreener/nifty-predictor/internal/notifier"
	"github.com/parasscreener/nifty-predictor/internal/predictor"
	"github.com/parasscreener/nifty-predictor/internal/publisher"
	"github.com/parasscreener/nifty-predictor/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the daily prediction pipeline from cron.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Publisher *publisher.Publisher
	History   *history.Log
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Lookback  int
	Noise     func() predictor.NoiseSource
	Ctx       context.Context

	// mu guards lastReport: the cron goroutine writes it, the Telegram
	// polling goroutine reads it.
	mu         sync.Mutex
	lastReport string
}

// NewScheduler creates a new Scheduler. noise is called once per run so
// clock-seeded sources draw fresh entropy each day.
func NewScheduler(ctx context.Context, col *collector.Collector, pub *publisher.Publisher, hist *history.Log, tn *notifier.TelegramNotifier, rec recorder.Recorder, lookback int, noise func() predictor.NoiseSource) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Publisher: pub,
		History:   hist,
		Notifier:  tn,
		Recorder:  rec,
		Lookback:  lookback,
		Noise:     noise,
		Ctx:       ctx,
	}
}

// Register registers the daily prediction task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily prediction")
	if err := s.runPipeline(); err != nil {
		log.Printf("[ERROR] daily prediction: %v", err)
		if pageErr := s.Publisher.WriteErrorPage(err); pageErr != nil {
			log.Printf("[ERROR] write error page: %v", pageErr)
		}
		s.trySend(notifier.FormatRunError(err))
	}
}

// runPipeline is one sequential pass: collect, estimate, predict, recommend,
// publish, persist. Errors propagate; there is no in-core retry.
func (s *Scheduler) runPipeline() error {
	series, err := s.Collector.Collect()
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}

	trend, err := calculator.EstimateTrend(series.DailyBars, s.Lookback)
	if err != nil {
		return fmt.Errorf("estimate trend: %w", err)
	}

	forecast, err := predictor.Predict(series.CurrentPrice, trend, s.Noise())
	if err != nil {
		return fmt.Errorf("predict: %w", err)
	}

	rec := advisor.Recommend(forecast, series.CurrentPrice)

	if err := s.Publisher.Publish(series, forecast, &rec); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	if err := s.History.Append(model.PredictionLogEntry{
		Timestamp:    time.Now(),
		CurrentPrice: series.CurrentPrice,
		Predictions:  forecast,
		Volume:       series.LatestVolume(),
	}); err != nil {
		log.Printf("[ERROR] append history: %v", err)
	}

	if err := s.Recorder.RecordRun(&recorder.RunRecord{
		Symbol:         series.Symbol,
		CurrentPrice:   series.CurrentPrice,
		Trend:          trend,
		Forecast:       forecast,
		Recommendation: &rec,
		Volume:         series.LatestVolume(),
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	report := notifier.FormatDailyReport(series, trend, forecast, &rec)
	s.setLastReport(report)
	s.trySend(report)

	log.Printf("[INFO] daily prediction done: %s %s (%.2f%%)", rec.Action, rec.Confidence, rec.ChangePct)
	return nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/run":
		s.dailyTask()
		return ""
	case "/latest":
		if report := s.latestReport(); report != "" {
			return report
		}
		return "暂无预测记录，发送 /run 立即执行"
	default:
		return "可用命令:\n• /run 立即执行预测\n• /latest 查看最近报告"
	}
}

func (s *Scheduler) setLastReport(report string) {
	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()
}

func (s *Scheduler) latestReport() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastReport
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
