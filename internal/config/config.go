package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/inventory/internal/dbx"
	"github.com/dmitrijs2005/inventory/internal/logging"
)

// Config holds runtime settings for the inventory CLI.
type Config struct {
	DatabaseDriver   string        `env:"INVENTORY_DB_DRIVER"`
	DatabaseDSN      string        `env:"INVENTORY_DB_DSN"`
	Locale           string        `env:"INVENTORY_LOCALE"`
	Currency         string        `env:"INVENTORY_CURRENCY"`
	Passphrase       string        `env:"INVENTORY_PASSPHRASE"`
	OperationTimeout time.Duration `env:"INVENTORY_OP_TIMEOUT"`
	LogLevel         string        `env:"INVENTORY_LOG_LEVEL"`
	LogFormat        string        `env:"INVENTORY_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = dbx.DriverSQLite
	c.DatabaseDSN = "inventory.db"
	c.Locale = "en-US"
	c.Currency = ""
	c.OperationTimeout = 5 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if err := dbx.CheckDriver(c.DatabaseDriver); err != nil {
		return err
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database dsn is empty")
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("operation timeout must be positive, got %s", c.OperationTimeout)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
