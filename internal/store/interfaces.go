package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user. Returns [ErrEmailAlreadyExists] when the email
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given (normalised) email or
	// [ErrUserNotFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ExpenseRepository persists expenses. Every method is scoped to a single
// owner: records of other users are invisible and reported as
// [ErrExpenseNotFound].
type ExpenseRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	Get(ctx context.Context, id, userID uuid.UUID) (models.Expense, error)
	Create(ctx context.Context, expense models.Expense) (models.Expense, error)
	Update(ctx context.Context, update models.ExpenseUpdate) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
