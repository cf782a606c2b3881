package model

import "time"

// PredictionLogEntry is one append-only record of a completed prediction run.
type PredictionLogEntry struct {
	Timestamp    time.Time          `json:"timestamp"`
	CurrentPrice float64            `json:"current_price"`
	Predictions  map[string]float64 `json:"predictions"`
	Volume       float64            `json:"volume"`
}
