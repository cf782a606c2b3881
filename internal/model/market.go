package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the fetched daily price data for one symbol.
// Bars are chronologically ascending; the last bar is the most recent session.
type PriceSeries struct {
	Symbol       string
	DailyBars    []OHLCV
	CurrentPrice float64
	FetchedAt    time.Time
}

// Closes returns the close prices of all bars in order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.DailyBars))
	for i, b := range s.DailyBars {
		closes[i] = b.Close
	}
	return closes
}

// LatestVolume returns the volume of the most recent session, 0 if empty.
func (s *PriceSeries) LatestVolume() float64 {
	if len(s.DailyBars) == 0 {
		return 0
	}
	return s.DailyBars[len(s.DailyBars)-1].Volume
}
