// Package migrations embeds the goose SQL migrations, one directory per
// database dialect.
package migrations

import "embed"

// Migrations holds the "sqlite" and "postgres" migration directories.
//
//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
