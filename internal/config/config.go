package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/spendlog-dev/spendlog/internal/model"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "spendlog.yaml"

// Environment variables honored by Resolve.
const (
	EnvConfig   = "SPENDLOG_CONFIG"
	EnvCurrency = "SPENDLOG_CURRENCY"
)

// Config represents the top-level spendlog.yaml configuration. It holds
// presentation and session settings only; no expense data is persisted.
type Config struct {
	Currency   string           `yaml:"currency"`
	Chart      ChartConfig      `yaml:"chart"`
	Categories []CategoryConfig `yaml:"categories,omitempty"`
}

// ChartConfig controls exported chart dimensions.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CategoryConfig adds a category to the session registry.
type CategoryConfig struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// Category converts the config entry to a model category.
func (c CategoryConfig) Category() model.Category {
	return model.Category{Key: c.Key, Name: c.Name}
}

// Load reads a spendlog.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new session.
func Default() *Config {
	return &Config{
		Currency: "$",
		Chart: ChartConfig{
			Width:  800,
			Height: 800,
		},
	}
}

// Resolve loads configuration for a session: an optional .env file, then the
// config file (explicit path, SPENDLOG_CONFIG, or spendlog.yaml in the
// working directory), then env overrides. A missing default-path file is not
// an error; an explicitly named file must exist.
func Resolve(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
		cfg = Default()
	default:
		return nil, err
	}

	if cfg.Currency == "" {
		cfg.Currency = "$"
	}
	if cur := os.Getenv(EnvCurrency); cur != "" {
		cfg.Currency = cur
	}

	return cfg, nil
}
