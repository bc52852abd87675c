package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldExpenseID targets the identifier of an existing expense.
	FieldExpenseID = "id"

	// FieldUserID targets the owner identifier of an expense.
	FieldUserID = "user_id"

	// FieldDescription targets the free-text description of an expense.
	FieldDescription = "description"

	// FieldCategory targets the category name of an expense.
	FieldCategory = "category"

	// FieldAmount targets the monetary amount of an expense.
	FieldAmount = "amount"
)

// Length limits in runes. They match the column sizes of the expenses table.
const (
	MaxDescriptionLength = 255
	MaxCategoryLength    = 100
)

// AmountScale is the number of fractional digits amounts are stored with.
const AmountScale = 2

// maxAmount bounds the absolute amount after rounding to AmountScale. It is
// the first value that does not fit NUMERIC(18, 2).
var maxAmount = decimal.New(1, 18-AmountScale)

// ExpenseValidator implements the Validator interface for
// models.CreateExpenseRequest and models.ExpenseUpdate.
type ExpenseValidator struct {
}

// NewExpenseValidator constructs a new ExpenseValidator
// and returns it as the Validator interface.
func NewExpenseValidator() Validator {
	return &ExpenseValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *ExpenseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateExpenseRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateExpenseRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.ExpenseUpdate:
		return v.validateExpenseUpdate(ctx, value, fields...)
	case *models.ExpenseUpdate:
		return v.validateExpenseUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateRequest validates a new expense.
//
// Default validated fields (when none specified): Description, Category,
// Amount.
func (v *ExpenseValidator) validateCreateRequest(ctx context.Context, request models.CreateExpenseRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldCategory, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldDescription:
			if err := validateDescription(request.Description); err != nil {
				return err
			}
		case FieldCategory:
			if err := validateCategory(request.Category); err != nil {
				return err
			}
		case FieldAmount:
			if err := validateAmount(request.Amount); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateExpenseUpdate validates a partial update. Optional fields are
// only checked when present. Provided strings may be empty, they only
// have to fit their columns.
//
// Default validated fields (when none specified): ID, UserID, Description,
// Category, Amount.
func (v *ExpenseValidator) validateExpenseUpdate(ctx context.Context, update models.ExpenseUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExpenseID, FieldUserID, FieldDescription, FieldCategory, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldExpenseID:
			if update.ID == uuid.Nil {
				return ErrInvalidExpenseID
			}
		case FieldUserID:
			if update.UserID == uuid.Nil {
				return ErrInvalidUserID
			}
		case FieldDescription:
			if update.Description != nil && utf8.RuneCountInString(*update.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		case FieldCategory:
			if update.Category != nil && utf8.RuneCountInString(*update.Category) > MaxCategoryLength {
				return ErrCategoryTooLong
			}
		case FieldAmount:
			if update.Amount != nil {
				if err := validateAmount(*update.Amount); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func validateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.Round(AmountScale).Abs().GreaterThanOrEqual(maxAmount) {
		return ErrAmountOutOfRange
	}
	return nil
}
