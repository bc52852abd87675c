// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by the command-line
// client to talk to the money-tracker API.
//
// The primary abstraction is [ServerAdapter], which decouples the client from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// money-tracker API. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the issued token is stored via
	// SetToken and returned.
	Register(ctx context.Context, request models.RegisterRequest) (string, error)

	// Login authenticates with email and password. On success the issued
	// token is stored via SetToken and returned.
	Login(ctx context.Context, request models.LoginRequest) (string, error)

	// ListExpenses returns every expense of the authenticated user.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// GetExpense returns one expense. Returns [ErrNotFound] (wrapped) when it
	// does not exist or belongs to another user.
	GetExpense(ctx context.Context, id uuid.UUID) (models.Expense, error)

	// CreateExpense stores a new expense and returns it as saved by the server.
	CreateExpense(ctx context.Context, request models.CreateExpenseRequest) (models.Expense, error)

	// UpdateExpense overwrites the provided fields of an expense.
	UpdateExpense(ctx context.Context, id uuid.UUID, request models.UpdateExpenseRequest) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
