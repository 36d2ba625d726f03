// Package storage opens the inventory database, brings its schema up to
// date and hands out the repositories matching the configured driver.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/inventory/internal/dbx"
	"github.com/dmitrijs2005/inventory/internal/filex"
	"github.com/dmitrijs2005/inventory/internal/migrations"
	"github.com/dmitrijs2005/inventory/internal/repositories/items"
	"github.com/dmitrijs2005/inventory/internal/repositories/metadata"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Repositories is the set of repositories bound to one open database.
type Repositories struct {
	DB       *sql.DB
	Driver   string
	Items    items.Repository
	Metadata metadata.Repository
}

// RunMigrations applies all pending migrations for driver.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	var dialect, dir string
	switch driver {
	case dbx.DriverSQLite:
		dialect, dir = "sqlite3", "sqlite"
	case dbx.DriverPostgres:
		dialect, dir = "pgx", "postgres"
	default:
		return dbx.CheckDriver(driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Open connects to the database, runs migrations and builds the repositories.
func Open(ctx context.Context, driver, dsn string) (*Repositories, error) {
	if err := dbx.CheckDriver(driver); err != nil {
		return nil, err
	}

	if driver == dbx.DriverSQLite && isFilePath(dsn) {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if driver == dbx.DriverSQLite {
		// a single connection keeps ":memory:" databases coherent and
		// serialises writers
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		DB:       db,
		Driver:   driver,
		Items:    NewItems(driver, db),
		Metadata: NewMetadata(driver, db),
	}, nil
}

// isFilePath reports whether a sqlite DSN names a plain file.
func isFilePath(dsn string) bool {
	return dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

// NewItems returns the items repository for driver bound to h.
func NewItems(driver string, h dbx.DBTX) items.Repository {
	if driver == dbx.DriverPostgres {
		return items.NewPostgresRepository(h)
	}
	return items.NewSQLiteRepository(h)
}

// NewMetadata returns the metadata repository for driver bound to h.
func NewMetadata(driver string, h dbx.DBTX) metadata.Repository {
	if driver == dbx.DriverPostgres {
		return metadata.NewPostgresRepository(h)
	}
	return metadata.NewSQLiteRepository(h)
}

// MetadataFactory returns a constructor that binds metadata repositories of
// this database's dialect to a handle, typically a transaction.
func (r *Repositories) MetadataFactory() func(dbx.DBTX) metadata.Repository {
	driver := r.Driver
	return func(h dbx.DBTX) metadata.Repository { return NewMetadata(driver, h) }
}

// Close releases the underlying database.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
