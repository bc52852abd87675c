// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// The password hash never leaves the server: it is excluded from JSON.
type User struct {
	// ID is the unique identifier of the user. It is embedded as the
	// subject of every issued token.
	ID uuid.UUID `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. Stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash holds the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of POST /api/Auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/Auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
