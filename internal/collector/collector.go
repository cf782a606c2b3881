package collector

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

// ErrNoData is returned when the provider yields an empty series.
var ErrNoData = errors.New("provider returned no price data")

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
	Err       error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.Price, days), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Price, nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches the daily series and current price for one symbol.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	Days    int
}

// NewCollector creates a new Collector. days is the history depth requested
// from the provider.
func NewCollector(fetcher Fetcher, symbol string, days int) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Days: days}
}

// Collect fetches market data and assembles a PriceSeries.
func (c *Collector) Collect() (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(c.Symbol, c.Days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, ErrNoData
	}

	currentPrice, err := c.Fetcher.FetchCurrentPrice(c.Symbol)
	if err != nil || currentPrice == 0 {
		log.Printf("[WARN] current price fetch failed (%v), using latest close", err)
		currentPrice = bars[len(bars)-1].Close
	}

	return &model.PriceSeries{
		Symbol:       c.Symbol,
		DailyBars:    bars,
		CurrentPrice: currentPrice,
		FetchedAt:    time.Now(),
	}, nil
}
