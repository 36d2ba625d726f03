// Package config loads runtime configuration for the inventory CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   database driver: sqlite or pgx
//	-f string   database DSN (file path for sqlite)
//	-l string   BCP 47 locale used to format prices
//	-m string   ISO 4217 currency code (empty: derived from the locale)
//	-t int      per-operation timeout (seconds)
//
// Environment
//
//	INVENTORY_DB_DRIVER, INVENTORY_DB_DSN, INVENTORY_LOCALE,
//	INVENTORY_CURRENCY, INVENTORY_OP_TIMEOUT ("5s"), INVENTORY_LOG_LEVEL,
//	INVENTORY_LOG_FORMAT, INVENTORY_PASSPHRASE
//
// The passphrase can only come from the environment; when it is empty the
// CLI prompts for it.
//
// # JSON schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "inventory.db",
//	  "locale": "en-US",
//	  "currency": "USD",
//	  "operation_timeout": "5s",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// Invalid values make LoadConfig panic.
package config
