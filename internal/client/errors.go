package client

import (
	"errors"

	"github.com/MKhiriev/money-tracker/internal/adapter"
	"github.com/MKhiriev/money-tracker/internal/app"
)

var (
	ErrNoCommand          = errors.New("no command given")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingExpenseID   = errors.New("expense id is required")
	ErrInvalidExpenseID   = errors.New("expense id must be a UUID")
	ErrMissingFlag        = errors.New("required flag is missing")
	ErrInvalidAmount      = errors.New("amount must be a decimal number")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD or RFC3339")
	ErrNothingToUpdate    = errors.New(app.MsgNothingToUpdate)
	ErrInvalidCredentials = errors.New(app.MsgInvalidCredentials)
	ErrEmptyPassword      = errors.New("password must not be empty")

	errNilAdapter    = errors.New("server adapter is nil")
	errNilTokenStore = errors.New("token store is nil")
)

// Describe turns err into a message suitable for the terminal. Transport
// errors are replaced with the catalogue wording; validation errors keep the
// server's explanation.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrNotAuthenticated):
		return app.MsgNotLoggedIn
	case errors.Is(err, ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrConflict):
		return app.MsgEmailTaken
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgExpenseNotFound
	case errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return app.MsgServerUnavailable
	default:
		return err.Error()
	}
}
