package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration of the CLI.
type Config struct {
	// DB is the path to the SQLite ledger database.
	DB string `yaml:"db"`
	// Currency is the accounting currency (ISO 4217 code).
	Currency string `yaml:"currency"`
	// EODHDKey is the EODHD API token. The EODHD_API_KEY environment
	// variable overrides it.
	EODHDKey string `yaml:"eodhd_key"`
	// Model is the Gemini model used by the assist command.
	Model string `yaml:"model"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "spm.yaml"
	}
	return filepath.Join(dir, "spm", "config.yaml")
}

func defaultDBPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "spm.db"
	}
	return filepath.Join(dir, ".spm", "ledger.db")
}

// loadConfig reads the YAML configuration at path. A missing file is not an
// error; defaults apply for every unset field.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if cfg.DB == "" {
		cfg.DB = defaultDBPath()
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}
	if key := os.Getenv("EODHD_API_KEY"); key != "" {
		cfg.EODHDKey = key
	}
	if cfg.EODHDKey == "" {
		cfg.EODHDKey = "demo"
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DB), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}
	return cfg, nil
}
