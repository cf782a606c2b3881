package collector

import (
	"errors"
	"testing"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

func TestCollect_AssemblesSeries(t *testing.T) {
	fetcher := &MockFetcher{Price: 21450.75}
	col := NewCollector(fetcher, "NIFTY50", 30)

	series, err := col.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Symbol != "NIFTY50" {
		t.Errorf("expected symbol NIFTY50, got %s", series.Symbol)
	}
	if len(series.DailyBars) != 30 {
		t.Errorf("expected 30 bars, got %d", len(series.DailyBars))
	}
	if series.CurrentPrice != 21450.75 {
		t.Errorf("expected current price 21450.75, got %.2f", series.CurrentPrice)
	}
	if series.FetchedAt.IsZero() {
		t.Error("expected FetchedAt to be set")
	}
	// Chronological order
	for i := 1; i < len(series.DailyBars); i++ {
		if series.DailyBars[i].Time.Before(series.DailyBars[i-1].Time) {
			t.Fatalf("bars not chronological at %d", i)
		}
	}
}

func TestCollect_EmptySeries(t *testing.T) {
	fetcher := &MockFetcher{Price: 21450.75, DailyData: []model.OHLCV{}}
	col := NewCollector(fetcher, "NIFTY50", 30)

	if _, err := col.Collect(); !errors.Is(err, ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}
}

func TestCollect_FetchError(t *testing.T) {
	fetcher := &MockFetcher{Err: errors.New("network down")}
	col := NewCollector(fetcher, "NIFTY50", 30)

	if _, err := col.Collect(); err == nil {
		t.Error("expected error from failing fetcher")
	}
}

func TestCollect_FallsBackToLatestClose(t *testing.T) {
	bars := generateMockBars(21000, 10)
	fetcher := &MockFetcher{Price: 0, DailyData: bars}
	col := NewCollector(fetcher, "NIFTY50", 10)

	series, err := col.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := bars[len(bars)-1].Close
	if series.CurrentPrice != want {
		t.Errorf("expected fallback to latest close %.2f, got %.2f", want, series.CurrentPrice)
	}
}
