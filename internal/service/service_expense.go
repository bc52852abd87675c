package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/store"
	"github.com/MKhiriev/money-tracker/internal/utils"
	"github.com/MKhiriev/money-tracker/internal/validators"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type expenseService struct {
	expenseRepository store.ExpenseRepository
	idGenerator       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewExpenseService(expenseRepository store.ExpenseRepository, logger *logger.Logger) ExpenseService {
	return &expenseService{
		expenseRepository: expenseRepository,
		idGenerator:       utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

func (e *expenseService) List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	return e.expenseRepository.List(ctx, userID)
}

func (e *expenseService) Get(ctx context.Context, id, userID uuid.UUID) (models.Expense, error) {
	return e.expenseRepository.Get(ctx, id, userID)
}

// Create stores a new expense owned by userID. A zero date defaults to the
// current time. Amount and date are brought to the precision of the
// expenses table, so the returned expense equals the stored row.
func (e *expenseService) Create(ctx context.Context, request models.CreateExpenseRequest, userID uuid.UUID) (models.Expense, error) {
	date := request.Date
	if date.IsZero() {
		date = time.Now()
	}

	expense := models.Expense{
		ID:          e.idGenerator.Generate(),
		UserID:      userID,
		Description: strings.TrimSpace(request.Description),
		Amount:      normalizeAmount(request.Amount),
		Date:        normalizeDate(date),
		Category:    strings.TrimSpace(request.Category),
	}

	return e.expenseRepository.Create(ctx, expense)
}

// Update overwrites the provided fields of the expense id owned by userID.
func (e *expenseService) Update(ctx context.Context, id uuid.UUID, request models.UpdateExpenseRequest, userID uuid.UUID) error {
	if request.Description != nil {
		description := strings.TrimSpace(*request.Description)
		request.Description = &description
	}
	if request.Category != nil {
		category := strings.TrimSpace(*request.Category)
		request.Category = &category
	}
	if request.Amount != nil {
		amount := normalizeAmount(*request.Amount)
		request.Amount = &amount
	}
	if request.Date != nil {
		date := normalizeDate(*request.Date)
		request.Date = &date
	}

	return e.expenseRepository.Update(ctx, models.ExpenseUpdate{
		ID:                   id,
		UserID:               userID,
		UpdateExpenseRequest: request,
	})
}

func (e *expenseService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return e.expenseRepository.Delete(ctx, id, userID)
}

// normalizeAmount rounds to the scale of the amount column.
func normalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(validators.AmountScale)
}

// normalizeDate converts to UTC at microsecond precision, the resolution of
// a Postgres timestamptz.
func normalizeDate(date time.Time) time.Time {
	return date.UTC().Truncate(time.Microsecond)
}
