package recorder

import "github.com/parasscreener/nifty-predictor/internal/model"

// RunRecord holds all data for one completed prediction run.
type RunRecord struct {
	Symbol         string
	CurrentPrice   float64
	Trend          float64
	Forecast       model.Forecast
	Recommendation *model.Recommendation
	Volume         float64
}

// Recorder persists historical run data for analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
