// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
)

// expenseRepository is the SQL implementation of [ExpenseRepository]. Every
// statement it issues carries a user_id predicate, so a caller can never
// observe or modify another user's rows.
type expenseRepository struct {
	*DB
	logger *logger.Logger
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by db.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		DB:     db,
		logger: logger,
	}
}

// List returns all expenses of userID, newest first. An empty result is an
// empty, non-nil slice.
func (r *expenseRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExpensesQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.List").
			Str("user_id", userID.String()).
			Msg("failed to execute query for listing expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, 50)
	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "expenseRepository.List").
				Str("user_id", userID.String()).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.List").
			Str("user_id", userID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return expenses, nil
}

// Get returns the expense id owned by userID or [ErrExpenseNotFound].
func (r *expenseRepository) Get(ctx context.Context, id, userID uuid.UUID) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetExpenseQuery(r.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Get").Msg("failed to create query")
		return models.Expense{}, err
	}

	expense, err := scanExpense(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, ErrExpenseNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.Get").
			Str("id", id.String()).
			Str("user_id", userID.String()).
			Msg("failed to scan expense row")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return expense, nil
}

// Create inserts expense. ID and UserID are expected to be set.
func (r *expenseRepository) Create(ctx context.Context, expense models.Expense) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertExpenseQuery(r.builder, expense)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Create").Msg("failed to create query")
		return models.Expense{}, err
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.Create").
			Str("user_id", expense.UserID.String()).
			Msg("failed to insert expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	expense.Date = expense.Date.UTC()
	return expense, nil
}

// Update overwrites the provided fields of the expense. An update without
// fields only checks that the expense exists.
func (r *expenseRepository) Update(ctx context.Context, update models.ExpenseUpdate) error {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		_, err := r.Get(ctx, update.ID, update.UserID)
		return err
	}

	query, args, err := buildUpdateExpenseQuery(r.builder, update)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Update").Msg("failed to create query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.Update").
			Str("id", update.ID.String()).
			Str("user_id", update.UserID.String()).
			Msg("failed to update expense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.expectAffected(ctx, result, "expenseRepository.Update")
}

// Delete removes the expense id owned by userID.
func (r *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpenseQuery(r.builder, id, userID)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.Delete").Msg("failed to create query")
		return err
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.Delete").
			Str("id", id.String()).
			Str("user_id", userID.String()).
			Msg("failed to delete expense")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.expectAffected(ctx, result, "expenseRepository.Delete")
}

func (r *expenseRepository) expectAffected(ctx context.Context, result sql.Result, funcName string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var expense models.Expense
	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Description,
		&expense.Amount,
		&expense.Date,
		&expense.Category,
	)
	if err != nil {
		return models.Expense{}, err
	}

	expense.Date = expense.Date.UTC()
	return expense, nil
}
