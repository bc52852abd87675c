// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ExpenseServiceWrapper

import (
	"context"

	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
)

// AuthService registers users, verifies credentials and issues or parses
// access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ExpenseService performs expense operations on behalf of a single owner.
// The userID argument always comes from a validated token.
type ExpenseService interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	Get(ctx context.Context, id, userID uuid.UUID) (models.Expense, error)
	Create(ctx context.Context, request models.CreateExpenseRequest, userID uuid.UUID) (models.Expense, error)
	Update(ctx context.Context, id uuid.UUID, request models.UpdateExpenseRequest, userID uuid.UUID) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// ExpenseServiceWrapper defines middleware composition for ExpenseService.
// Implementations wrap an existing ExpenseService to add behavior such as
// validation.
type ExpenseServiceWrapper interface {
	Wrap(ExpenseService) ExpenseService // returns a decorated ExpenseService applying additional behavior
}

// AppInfoService exposes version and health information about the running
// server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// Pinger reports database reachability. Implemented by store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}
