package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/parasscreener/nifty-predictor/internal/model"
)

// DefaultLimit caps the prediction history length.
const DefaultLimit = 100

// Log persists the append-only prediction history as a JSON array.
// Mutation rule: append, then truncate to the last Limit entries.
type Log struct {
	FilePath string
	Limit    int
}

// NewLog creates a Log. limit <= 0 falls back to DefaultLimit.
func NewLog(filePath string, limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{FilePath: filePath, Limit: limit}
}

// Load reads the history. A missing or corrupt file yields an empty history.
func (l *Log) Load() []model.PredictionLogEntry {
	data, err := os.ReadFile(l.FilePath)
	if err != nil {
		return nil
	}
	var entries []model.PredictionLogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Append adds an entry, truncates to the last Limit entries and writes the
// file back.
func (l *Log) Append(entry model.PredictionLogEntry) error {
	entries := append(l.Load(), entry)
	if len(entries) > l.Limit {
		entries = entries[len(entries)-l.Limit:]
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(l.FilePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(l.FilePath, data, 0644)
}
