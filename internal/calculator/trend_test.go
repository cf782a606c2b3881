package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: base.AddDate(0, 0, i), Close: c, Volume: 1000000}
	}
	return bars
}

func TestEstimateTrend_KnownValue(t *testing.T) {
	// Lookback start is the 5th-from-last close: 21000 -> 21450.75
	bars := barsFromCloses([]float64{20500, 20800, 21000, 21100, 21200, 21300, 21450.75})
	trend, err := EstimateTrend(bars, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (21450.75 - 21000) / 21000
	if math.Abs(trend-want) > 1e-12 {
		t.Errorf("expected trend %.6f, got %.6f", want, trend)
	}
}

func TestEstimateTrend_ScaleInvariant(t *testing.T) {
	closes := []float64{21000, 21100, 21200, 21300, 21450.75}
	doubled := make([]float64, len(closes))
	for i, c := range closes {
		doubled[i] = c * 2
	}

	t1, err := EstimateTrend(barsFromCloses(closes), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t2, err := EstimateTrend(barsFromCloses(doubled), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(t1-t2) > 1e-12 {
		t.Errorf("trend not scale-invariant: %.9f vs %.9f", t1, t2)
	}
}

func TestEstimateTrend_InsufficientData(t *testing.T) {
	bars := barsFromCloses([]float64{21000, 21100, 21200})
	if _, err := EstimateTrend(bars, 5); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}
}

func TestEstimateTrend_FlatSeries(t *testing.T) {
	bars := barsFromCloses([]float64{21000, 21000, 21000, 21000, 21000})
	trend, err := EstimateTrend(bars, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trend != 0 {
		t.Errorf("expected zero trend for flat series, got %.9f", trend)
	}
}

func TestEstimateTrend_BadLookback(t *testing.T) {
	bars := barsFromCloses([]float64{21000, 21100})
	if _, err := EstimateTrend(bars, 0); err == nil {
		t.Error("expected error for non-positive lookback")
	}
}
