package store

import (
	"context"

	"github.com/MKhiriev/money-tracker/internal/logger"
)

// Storages groups the repositories built on top of a single [DB].
type Storages struct {
	UserRepository    UserRepository
	ExpenseRepository ExpenseRepository

	db *DB
}

// NewStorages constructs all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ExpenseRepository: NewExpenseRepository(db, logger),
		db:                db,
	}
}

// Ping reports whether the underlying database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
