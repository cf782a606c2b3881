package calculator

import (
	"errors"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

// ErrInsufficientData is returned when the series is shorter than the lookback window.
var ErrInsufficientData = errors.New("not enough data for trend calculation")

// DefaultLookback is the number of most-recent sessions used for the trend.
const DefaultLookback = 5

// EstimateTrend computes the signed fractional price change over the last
// `lookback` sessions: (lastClose - closeAtLookbackStart) / closeAtLookbackStart.
// No smoothing, no outlier handling.
func EstimateTrend(bars []model.OHLCV, lookback int) (float64, error) {
	if lookback <= 0 {
		return 0, errors.New("lookback must be positive")
	}
	if len(bars) < lookback {
		return 0, ErrInsufficientData
	}
	closes := extractCloses(bars)
	last := closes[len(closes)-1]
	start := closes[len(closes)-lookback]
	if start == 0 {
		return 0, errors.New("lookback start close is zero")
	}
	return (last - start) / start, nil
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
