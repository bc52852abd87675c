package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/service"
	"github.com/MKhiriev/money-tracker/internal/store"
	"github.com/MKhiriev/money-tracker/internal/utils"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusTable is checked in order; the first match wins.
var errorStatusTable = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidExpenseID, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrMissingUserID, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsInvalid, http.StatusUnauthorized},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrExpenseNotFound, http.StatusNotFound},

	{service.ErrDatabaseUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text sent to the client. Validation errors
// keep their detail; server errors never leak internals.
func messageFromError(err error) string {
	for _, entry := range errorStatusTable {
		if !errors.Is(err, entry.err) {
			continue
		}
		if entry.err == service.ErrInvalidDataProvided {
			return err.Error()
		}
		if entry.status >= http.StatusInternalServerError {
			return http.StatusText(entry.status)
		}
		return entry.err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and writes the mapped status with a plain-text body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Info()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="money-tracker"`)
	}
	http.Error(w, messageFromError(err), status)
}
