package store

import (
	"context"
	"errors"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	moderncsqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/logger"
)

// NewConnectSQLite opens an SQLite database. cfg.Driver selects the
// pure-Go modernc.org/sqlite driver ("sqlite") or the cgo
// github.com/mattn/go-sqlite3 driver ("sqlite3"). Foreign keys must be
// enabled through the DSN (e.g. "_pragma=foreign_keys(1)" for modernc,
// "_foreign_keys=on" for mattn).
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return open(ctx, cfg.Driver, cfg, log)
}

// sqliteErrorCode returns the extended result code of a modernc driver error
// and false for any other error.
func sqliteErrorCode(err error) (int, bool) {
	var sqliteErr *moderncsqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code(), true
	}

	return 0, false
}

// isUniqueViolation reports whether err is a unique constraint violation
// from any of the supported drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if postgresError(err) == pgUniqueViolation {
		return true
	}
	if code, ok := sqliteErrorCode(err); ok {
		return code == sqlitelib.SQLITE_CONSTRAINT_UNIQUE || code == sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY
	}

	// mattn/go-sqlite3 error types are only available with cgo.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
