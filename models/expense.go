// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amounts are JSON numbers in the public API; decoding accepts numbers and
// numeric strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a single spending record owned by exactly one user.
//
// JSON field names follow the public API contract consumed by the web
// frontend (camelCase).
type Expense struct {
	// ID is the unique identifier of the expense.
	ID uuid.UUID `json:"id"`

	// UserID is the owner of the expense. It is always taken from the
	// authenticated token and never from client input.
	UserID uuid.UUID `json:"userId"`

	// Description is a free-text label of the expense.
	Description string `json:"description"`

	// Amount is the monetary value. Negative and zero values are allowed.
	Amount decimal.Decimal `json:"amount"`

	// Date is the moment the expense happened.
	Date time.Time `json:"date"`

	// Category is a free-text category name.
	Category string `json:"category"`
}

// TableName returns the name of the database table
// associated with the Expense model.
func (e Expense) TableName() string {
	return "expenses"
}

// CreateExpenseRequest is the body of POST /api/Expenses.
type CreateExpenseRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
}

// UpdateExpenseRequest is the body of PUT /api/Expenses/{id}.
// Only non-nil fields will be updated (partial update support).
type UpdateExpenseRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
	Category    *string          `json:"category,omitempty"`
}

// IsEmpty reports whether the request carries no field to update.
func (u UpdateExpenseRequest) IsEmpty() bool {
	return u.Description == nil && u.Amount == nil && u.Date == nil && u.Category == nil
}

// ExpenseUpdate is the storage-level form of an update: the request plus the
// identity of the record and its owner.
type ExpenseUpdate struct {
	ID     uuid.UUID
	UserID uuid.UUID
	UpdateExpenseRequest
}
