package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/parasscreener/nifty-predictor/internal/collector"
	"github.com/parasscreener/nifty-predictor/internal/history"
	"github.com/parasscreener/nifty-predictor/internal/notifier"
	"github.com/parasscreener/nifty-predictor/internal/predictor"
	"github.com/parasscreener/nifty-predictor/internal/publisher"
	"github.com/parasscreener/nifty-predictor/internal/recorder"
)

func newTestScheduler(t *testing.T, fetcher collector.Fetcher) (*Scheduler, string) {
	t.Helper()
	dir := t.TempDir()
	pub, err := publisher.NewPublisher(dir)
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	col := collector.NewCollector(fetcher, "NIFTY50", 30)
	hist := history.NewLog(filepath.Join(dir, "prediction_history.json"), 100)
	tn := notifier.NewTelegramNotifier("", "", "")
	noise := func() predictor.NoiseSource { return predictor.NewSeededSource(42) }
	s := NewScheduler(context.Background(), col, pub, hist, tn, recorder.NewNoopRecorder(), 5, noise)
	return s, dir
}

func TestRunNow_PublishesAndLogs(t *testing.T) {
	s, dir := newTestScheduler(t, &collector.MockFetcher{Price: 21450.75})
	s.RunNow()

	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("index.html not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data.json")); err != nil {
		t.Errorf("data.json not written: %v", err)
	}

	entries := s.History.Load()
	if len(entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(entries))
	}
	if entries[0].CurrentPrice != 21450.75 {
		t.Errorf("expected logged price 21450.75, got %.2f", entries[0].CurrentPrice)
	}
	if len(entries[0].Predictions) != 3 {
		t.Errorf("expected 3 logged predictions, got %d", len(entries[0].Predictions))
	}

	if s.latestReport() == "" {
		t.Error("expected latest report to be set after a run")
	}
}

func TestRunNow_FetchFailureWritesErrorPage(t *testing.T) {
	s, dir := newTestScheduler(t, &collector.MockFetcher{Err: errors.New("provider down")})
	s.RunNow()

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("error page not written: %v", err)
	}
	if !strings.Contains(string(html), "provider down") {
		t.Error("error page missing failure cause")
	}
	if len(s.History.Load()) != 0 {
		t.Error("failed run must not append history")
	}
}

// The cron goroutine and the Telegram polling goroutine share the last
// report; this must stay clean under -race.
func TestConcurrentRunAndLatest(t *testing.T) {
	s, _ := newTestScheduler(t, &collector.MockFetcher{Price: 21450.75})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 10; i++ {
			s.RunNow()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.HandleCommand("/latest")
		}
	}()
	wg.Wait()

	if !strings.Contains(s.HandleCommand("/latest"), "NIFTY 50") {
		t.Error("expected a report after concurrent runs")
	}
}

func TestHandleCommand(t *testing.T) {
	s, _ := newTestScheduler(t, &collector.MockFetcher{Price: 21450.75})

	if reply := s.HandleCommand("/latest"); !strings.Contains(reply, "/run") {
		t.Errorf("expected hint before first run, got %q", reply)
	}
	if reply := s.HandleCommand("/run"); reply != "" {
		t.Errorf("expected empty reply for /run, got %q", reply)
	}
	if reply := s.HandleCommand("/latest"); !strings.Contains(reply, "NIFTY 50") {
		t.Errorf("expected latest report, got %q", reply)
	}
	if reply := s.HandleCommand("/bogus"); !strings.Contains(reply, "可用命令") {
		t.Errorf("expected help text, got %q", reply)
	}
}
