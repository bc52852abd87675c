package store

import (
	"fmt"

	"github.com/MKhiriev/money-tracker/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var (
	userColumns    = []string{"id", "name", "email", "password_hash", "created_at"}
	expenseColumns = []string{"id", "user_id", "description", "amount", "date", "category"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListExpensesQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.Select(expenseColumns...).
		From(models.Expense{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetExpenseQuery(b sq.StatementBuilderType, id, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.Select(expenseColumns...).
		From(models.Expense{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertExpenseQuery(b sq.StatementBuilderType, expense models.Expense) (string, []any, error) {
	query, args, err := b.Insert(expense.TableName()).
		Columns(expenseColumns...).
		Values(expense.ID, expense.UserID, expense.Description, expense.Amount, expense.Date.UTC(), expense.Category).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateExpenseQuery sets only the provided fields. The owner predicate
// is always part of the WHERE clause.
func buildUpdateExpenseQuery(b sq.StatementBuilderType, update models.ExpenseUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := b.Update(models.Expense{}.TableName())
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Date != nil {
		builder = builder.Set("date", update.Date.UTC())
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteExpenseQuery(b sq.StatementBuilderType, id, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.Delete(models.Expense{}.TableName()).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
