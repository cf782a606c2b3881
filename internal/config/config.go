package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Symbol  string `yaml:"symbol"`
		Days    int    `yaml:"days"`
	} `yaml:"data_source"`
	Predictor struct {
		Lookback  int   `yaml:"lookback"`
		NoiseSeed int64 `yaml:"noise_seed"` // 0 seeds from the wall clock
	} `yaml:"predictor"`
	Output struct {
		SiteDir      string `yaml:"site_dir"`
		HistoryFile  string `yaml:"history_file"`
		HistoryLimit int    `yaml:"history_limit"`
	} `yaml:"output"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SITE_DIR"); v != "" {
		cfg.Output.SiteDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("NOISE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Predictor.NoiseSeed = seed
		}
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "NIFTY50"
	}
	if cfg.DataSource.Days == 0 {
		cfg.DataSource.Days = 250
	}
	if cfg.Predictor.Lookback == 0 {
		cfg.Predictor.Lookback = 5
	}
	if cfg.Output.SiteDir == "" {
		cfg.Output.SiteDir = "docs"
	}
	if cfg.Output.HistoryFile == "" {
		cfg.Output.HistoryFile = "docs/prediction_history.json"
	}
	if cfg.Output.HistoryLimit == 0 {
		cfg.Output.HistoryLimit = 100
	}
	if cfg.Schedule.DailyCron == "" {
		// Weekdays 09:30, after the NSE opens
		cfg.Schedule.DailyCron = "0 30 9 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/predictions.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.Predictor.Lookback <= 0 {
		return fmt.Errorf("predictor.lookback must be positive")
	}
	if c.DataSource.Days < c.Predictor.Lookback {
		return fmt.Errorf("data_source.days must cover the lookback window")
	}
	if c.Output.SiteDir == "" {
		return fmt.Errorf("output.site_dir is required")
	}
	if c.Output.HistoryLimit <= 0 {
		return fmt.Errorf("output.history_limit must be positive")
	}
	return nil
}
