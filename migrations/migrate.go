// Package migrations holds the embedded SQL schema of the service and
// applies it with goose. Each supported dialect has its own directory.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDriver is returned for a driver with no migration set.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Migrate applies all pending migrations for driver ("postgres", "sqlite"
// or "sqlite3") to db.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the currently applied schema version.
func Version(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	if db == nil {
		return 0, errors.New("migration error: db is nil")
	}

	provider, err := newProvider(db, driver)
	if err != nil {
		return 0, err
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error getting db version: %w", err)
	}

	return version, nil
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case "postgres":
		return goose.DialectPostgres, "postgres", nil
	case "sqlite", "sqlite3":
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("migration error: %w: %q", ErrUnsupportedDriver, driver)
	}
}
