package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/inventory/internal/flagx"
	"github.com/dmitrijs2005/inventory/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabaseDriver   string         `json:"database_driver"`
	DatabaseDSN      string         `json:"database_dsn"`
	Locale           string         `json:"locale"`
	Currency         string         `json:"currency"`
	OperationTimeout timex.Duration `json:"operation_timeout"`
	LogLevel         string         `json:"log_level"`
	LogFormat        string         `json:"log_format"`
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays Config with the non-empty values of the JSON file
// named by -c or -config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DatabaseDriver, jc.DatabaseDriver)
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.Locale, jc.Locale)
	overlay(&cfg.Currency, jc.Currency)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	if jc.OperationTimeout.Duration != 0 {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
}
