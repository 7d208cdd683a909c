package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the credit rating analyzer.
type Config struct {
	Server   Server         `yaml:"server"`
	Storage  Storage        `yaml:"storage"`
	Yahoo    Yahoo          `yaml:"yahoo"`
	Alpaca   Alpaca         `yaml:"alpaca"`
	News     News           `yaml:"news"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  Logging        `yaml:"logging"`
}

// Server holds network listener configuration.
type Server struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Storage holds paths for data persistence.
type Storage struct {
	DataDir    string `yaml:"data_dir"`
	SQLitePath string `yaml:"sqlite_path"`
	CSVPath    string `yaml:"csv_path"`
}

// Yahoo holds endpoints for the Yahoo Finance data provider.
type Yahoo struct {
	QuoteURL string `yaml:"quote_url"`
	ChartURL string `yaml:"chart_url"`
}

// Alpaca holds optional credentials for the Alpaca news fallback, used for
// NSE companies with US-listed ADRs.
type Alpaca struct {
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`
}

// News configures headline retrieval for the event score.
type News struct {
	HeadlineLimit int `yaml:"headline_limit"`
}

// AnalysisConfig holds parameters for batch analysis runs.
type AnalysisConfig struct {
	MaxWorkers      int `yaml:"max_workers"`
	RateLimitPerMin int `yaml:"rate_limit_per_min"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns a Config with working defaults for every field, so the CLI
// can run without a config file at all.
func Default() *Config {
	return &Config{
		Server:  Server{Host: "0.0.0.0", Port: 8000},
		Storage: Storage{DataDir: "data", SQLitePath: "data/credtech.db", CSVPath: "data/credit_scores_no_pledge.csv"},
		Yahoo: Yahoo{
			QuoteURL: "https://query1.finance.yahoo.com/v10/finance/quoteSummary",
			ChartURL: "https://query1.finance.yahoo.com/v8/finance/chart",
		},
		News:     News{HeadlineLimit: 5},
		Analysis: AnalysisConfig{MaxWorkers: 4, RateLimitPerMin: 60},
		Logging:  Logging{Level: "info", Format: "json"},
	}
}

// Load reads the YAML configuration file at the given path, parses it over
// the defaults, and then applies environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadOrDefault behaves like Load but falls back to the defaults (still
// honoring environment overrides) when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = Default()
		applyEnvOverrides(cfg)
	}
	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides
// the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Storage.CSVPath = v
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.Alpaca.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_SECRET"); v != "" {
		cfg.Alpaca.APISecret = v
	}

	// APCA_* values win when both forms are set.
	if v := os.Getenv("APCA_API_KEY_ID"); v != "" {
		cfg.Alpaca.APIKey = v
	}
	if v := os.Getenv("APCA_API_SECRET_KEY"); v != "" {
		cfg.Alpaca.APISecret = v
	}
}
