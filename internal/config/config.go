package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name     string `envconfig:"APP_NAME" default:"InvoiceApp"`
		DataDir  string `envconfig:"DATA_DIR" default:""`
		Currency string `envconfig:"CURRENCY" default:"USD"`
	}

	Sync struct {
		Endpoint string        `envconfig:"SYNC_ENDPOINT" default:""`
		Token    string        `envconfig:"SYNC_TOKEN" default:""`
		Timeout  time.Duration `envconfig:"SYNC_TIMEOUT" default:"30s"`
	}

	Export struct {
		OutputDir string `envconfig:"EXPORT_DIR" default:"./exports"`
	}
}

// DataDirectory returns the configured data directory, defaulting to
// ~/.invoice-app when unset.
func (c *Config) DataDirectory() string {
	if c.App.DataDir != "" {
		return c.App.DataDir
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".invoice-app"
	}

	return filepath.Join(home, ".invoice-app")
}

// SyncEnabled reports whether a remote sync endpoint is configured.
func (c *Config) SyncEnabled() bool {
	return c.Sync.Endpoint != ""
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
