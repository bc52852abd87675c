package store

import (
	sqlitelib "modernc.org/sqlite/lib"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// Only lock contention (SQLITE_BUSY, SQLITE_LOCKED and their extended codes)
// is transient.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	code, ok := sqliteErrorCode(err)
	if !ok {
		return NonRetryable
	}

	switch code & 0xff {
	case sqlitelib.SQLITE_BUSY, sqlitelib.SQLITE_LOCKED:
		return Retryable
	}

	return NonRetryable
}
