package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/money-tracker/models"
)

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	MaxNameLength  = 100
	MaxEmailLength = 320
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// UserValidator implements the Validator interface for
// models.RegisterRequest and models.LoginRequest.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate validates registration and login requests.
// Default fields: Name, Email, Password for registration and Email,
// Password for login.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		if len(fields) == 0 {
			fields = []string{FieldName, FieldEmail, FieldPassword}
		}
		return v.validate(value.Name, value.Email, value.Password, fields...)
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)

	case models.LoginRequest:
		if len(fields) == 0 {
			fields = []string{FieldEmail, FieldPassword}
		}
		return v.validate("", value.Email, value.Password, fields...)
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validate(name, email, password string, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldEmail:
			if err := validateEmail(email); err != nil {
				return err
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
			if len(password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare RFC 5322 address ("user@host"), without a
// display name.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if len(email) > MaxEmailLength {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}
