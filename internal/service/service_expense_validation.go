package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/money-tracker/internal/validators"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
)

// ExpenseValidationService rejects malformed expense requests before they
// reach the wrapped ExpenseService.
type ExpenseValidationService struct {
	inner     ExpenseService
	validator validators.Validator
}

func NewExpenseValidationService() ExpenseServiceWrapper {
	return &ExpenseValidationService{
		validator: validators.NewExpenseValidator(),
	}
}

func (v *ExpenseValidationService) List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.List(ctx, userID)
}

func (v *ExpenseValidationService) Get(ctx context.Context, id, userID uuid.UUID) (models.Expense, error) {
	if err := validateIDs(id, userID); err != nil {
		return models.Expense{}, err
	}

	return v.inner.Get(ctx, id, userID)
}

func (v *ExpenseValidationService) Create(ctx context.Context, request models.CreateExpenseRequest, userID uuid.UUID) (models.Expense, error) {
	if userID == uuid.Nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, request, userID)
}

func (v *ExpenseValidationService) Update(ctx context.Context, id uuid.UUID, request models.UpdateExpenseRequest, userID uuid.UUID) error {
	update := models.ExpenseUpdate{ID: id, UserID: userID, UpdateExpenseRequest: request}
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, request, userID)
}

func (v *ExpenseValidationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := validateIDs(id, userID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id, userID)
}

func (v *ExpenseValidationService) Wrap(wrapped ExpenseService) ExpenseService {
	v.inner = wrapped
	return v
}

func validateIDs(id, userID uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidExpenseID)
	}
	if userID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return nil
}
