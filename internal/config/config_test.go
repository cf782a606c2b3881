package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Symbol != "NIFTY50" {
		t.Errorf("expected default symbol NIFTY50, got %s", cfg.DataSource.Symbol)
	}
	if cfg.Predictor.Lookback != 5 {
		t.Errorf("expected default lookback 5, got %d", cfg.Predictor.Lookback)
	}
	if cfg.Output.SiteDir != "docs" {
		t.Errorf("expected default site dir docs, got %s", cfg.Output.SiteDir)
	}
	if cfg.Output.HistoryLimit != 100 {
		t.Errorf("expected default history limit 100, got %d", cfg.Output.HistoryLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
data_source:
  symbol: NIFTY
  days: 120
predictor:
  lookback: 7
  noise_seed: 42
output:
  site_dir: public
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SYMBOL", "NSEI")
	t.Setenv("NOISE_SEED", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataSource.Symbol != "NSEI" {
		t.Errorf("env override lost: %s", cfg.DataSource.Symbol)
	}
	if cfg.DataSource.Days != 120 {
		t.Errorf("yaml days lost: %d", cfg.DataSource.Days)
	}
	if cfg.Predictor.Lookback != 7 {
		t.Errorf("yaml lookback lost: %d", cfg.Predictor.Lookback)
	}
	if cfg.Predictor.NoiseSeed != 7 {
		t.Errorf("env noise seed lost: %d", cfg.Predictor.NoiseSeed)
	}
	if cfg.Output.SiteDir != "public" {
		t.Errorf("yaml site dir lost: %s", cfg.Output.SiteDir)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.DataSource.Days = 3 // shorter than the lookback window
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error when days < lookback")
	}
}
