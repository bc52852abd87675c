package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidExpenseID   = errors.New("invalid expense ID")
	ErrEmptyDescription   = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrEmptyCategory      = errors.New("category is required")
	ErrCategoryTooLong    = errors.New("category is too long")
	ErrAmountOutOfRange   = errors.New("amount is out of range")
	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrEmptyEmail         = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email is invalid")
	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooLong    = errors.New("password is too long")
)
