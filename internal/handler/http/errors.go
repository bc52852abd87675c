// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingUserID is returned when an authenticated route runs without a
	// user ID in the request context.
	ErrMissingUserID = errors.New("no authenticated user in request context")

	// ErrInvalidExpenseID is returned when the {id} path segment is not a UUID.
	ErrInvalidExpenseID = errors.New("invalid expense id")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
