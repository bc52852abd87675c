// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestExpenseValidator_CreateRequest(t *testing.T) {
	v := NewExpenseValidator()

	tests := []struct {
		name    string
		request models.CreateExpenseRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", request: models.CreateExpenseRequest{Description: "Coffee", Category: "Food"}},
		{name: "blank description", request: models.CreateExpenseRequest{Description: "   ", Category: "Food"}, wantErr: ErrEmptyDescription},
		{name: "long description", request: models.CreateExpenseRequest{Description: strings.Repeat("a", 256), Category: "Food"}, wantErr: ErrDescriptionTooLong},
		{name: "multibyte description at limit", request: models.CreateExpenseRequest{Description: strings.Repeat("ж", 255), Category: "Food"}},
		{name: "empty category", request: models.CreateExpenseRequest{Description: "Coffee"}, wantErr: ErrEmptyCategory},
		{name: "long category", request: models.CreateExpenseRequest{Description: "Coffee", Category: strings.Repeat("c", 101)}, wantErr: ErrCategoryTooLong},
		{name: "scoped to description", request: models.CreateExpenseRequest{Description: "Coffee"}, fields: []string{FieldDescription}},
		{name: "unknown field", request: models.CreateExpenseRequest{Description: "Coffee", Category: "Food"}, fields: []string{"notes"}, wantErr: ErrUnknownField},
		{name: "negative amount", request: models.CreateExpenseRequest{Description: "Refund", Category: "Food", Amount: decimal.RequireFromString("-99.99")}},
		{name: "largest storable amount", request: models.CreateExpenseRequest{Description: "Coffee", Category: "Food", Amount: decimal.RequireFromString("9999999999999999.99")}},
		{name: "amount rounds over limit", request: models.CreateExpenseRequest{Description: "Coffee", Category: "Food", Amount: decimal.RequireFromString("9999999999999999.995")}, wantErr: ErrAmountOutOfRange},
		{name: "amount over limit", request: models.CreateExpenseRequest{Description: "Coffee", Category: "Food", Amount: decimal.RequireFromString("-1e16")}, wantErr: ErrAmountOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpenseValidator_Update(t *testing.T) {
	v := NewExpenseValidator()
	id, owner := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		update  models.ExpenseUpdate
		wantErr error
	}{
		{name: "empty update is valid", update: models.ExpenseUpdate{ID: id, UserID: owner}},
		{name: "valid description", update: models.ExpenseUpdate{ID: id, UserID: owner, UpdateExpenseRequest: models.UpdateExpenseRequest{Description: ptr("Tea")}}},
		{name: "empty description overwrites", update: models.ExpenseUpdate{ID: id, UserID: owner, UpdateExpenseRequest: models.UpdateExpenseRequest{Description: ptr("")}}},
		{name: "blank category overwrites", update: models.ExpenseUpdate{ID: id, UserID: owner, UpdateExpenseRequest: models.UpdateExpenseRequest{Category: ptr(" ")}}},
		{name: "long description", update: models.ExpenseUpdate{ID: id, UserID: owner, UpdateExpenseRequest: models.UpdateExpenseRequest{Description: ptr(strings.Repeat("d", 256))}}, wantErr: ErrDescriptionTooLong},
		{name: "long category", update: models.ExpenseUpdate{ID: id, UserID: owner, UpdateExpenseRequest: models.UpdateExpenseRequest{Category: ptr(strings.Repeat("c", 101))}}, wantErr: ErrCategoryTooLong},
		{name: "amount over limit", update: models.ExpenseUpdate{ID: id, UserID: owner, UpdateExpenseRequest: models.UpdateExpenseRequest{Amount: decPtr("1e16")}}, wantErr: ErrAmountOutOfRange},
		{name: "missing id", update: models.ExpenseUpdate{UserID: owner}, wantErr: ErrInvalidExpenseID},
		{name: "missing owner", update: models.ExpenseUpdate{ID: id}, wantErr: ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), &tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpenseValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewExpenseValidator().Validate(context.Background(), "nope"), ErrUnsupportedType)
}

func TestUserValidator_Register(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		request models.RegisterRequest
		wantErr error
	}{
		{name: "valid", request: models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pw"}},
		{name: "empty name", request: models.RegisterRequest{Name: " ", Email: "alice@example.com", Password: "pw"}, wantErr: ErrEmptyName},
		{name: "long name", request: models.RegisterRequest{Name: strings.Repeat("n", 101), Email: "alice@example.com", Password: "pw"}, wantErr: ErrNameTooLong},
		{name: "empty email", request: models.RegisterRequest{Name: "Alice", Password: "pw"}, wantErr: ErrEmptyEmail},
		{name: "no at sign", request: models.RegisterRequest{Name: "Alice", Email: "alice.example.com", Password: "pw"}, wantErr: ErrInvalidEmail},
		{name: "display name", request: models.RegisterRequest{Name: "Alice", Email: "Alice <alice@example.com>", Password: "pw"}, wantErr: ErrInvalidEmail},
		{name: "empty password", request: models.RegisterRequest{Name: "Alice", Email: "alice@example.com"}, wantErr: ErrEmptyPassword},
		{name: "password over bcrypt limit", request: models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: strings.Repeat("p", 73)}, wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()

	assert.NoError(t, v.Validate(context.Background(), &models.LoginRequest{Email: "bob@example.com", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Email: "bob@example.com"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{Password: "pw"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
