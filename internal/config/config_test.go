package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		DatabaseDriver:   "sqlite",
		DatabaseDSN:      "inventory.db",
		Locale:           "en-US",
		OperationTimeout: 5 * time.Second,
		LogLevel:         "warn",
		LogFormat:        "text",
	}
	assert.Empty(t, cmp.Diff(want, c))
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"dsn", func(c *Config) { c.DatabaseDSN = "" }},
		{"timeout", func(c *Config) { c.OperationTimeout = 0 }},
		{"log format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_dsn":      "from-json.db",
		"locale":            "de-DE",
		"operation_timeout": "7s",
	})
	t.Setenv("INVENTORY_LOCALE", "fr-FR")
	t.Setenv("INVENTORY_PASSPHRASE", "s3cret")

	os.Args = []string{"testbin", "-c", path, "-m", "CHF"}

	cfg := LoadConfig()

	assert.Equal(t, "from-json.db", cfg.DatabaseDSN)
	assert.Equal(t, "fr-FR", cfg.Locale)
	assert.Equal(t, "CHF", cfg.Currency)
	assert.Equal(t, "s3cret", cfg.Passphrase)
	assert.Equal(t, 7*time.Second, cfg.OperationTimeout)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
}

func TestLoadConfig_InvalidPanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-d", "oracle"}
	require.Panics(t, func() { LoadConfig() })
}
