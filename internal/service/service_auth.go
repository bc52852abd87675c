// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/store"
	"github.com/MKhiriev/money-tracker/internal/utils"
	"github.com/MKhiriev/money-tracker/internal/validators"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks register and login requests.
	validator validators.Validator

	// idGenerator issues identifiers for new users.
	idGenerator *utils.UUIDGenerator

	// bcryptCost is the bcrypt work factor. Zero selects bcrypt.DefaultCost.
	bcryptCost int

	// jwtParams holds the signing key, issuer, audience and lifetime of
	// issued tokens.
	jwtParams utils.JWTParams

	// dummyHash is compared against on unknown emails so that login
	// latency does not reveal whether an account exists.
	dummyHash     string
	dummyHashOnce sync.Once

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		idGenerator:    utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		jwtParams: utils.JWTParams{
			Issuer:   cfg.TokenIssuer,
			Audience: cfg.TokenAudience,
			Duration: cfg.TokenDuration,
			SignKey:  cfg.TokenSignKey,
		},
		logger: logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is trimmed and lower-cased before validation so that uniqueness
// is case-insensitive. The password is stored as a bcrypt hash.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping the validation error.
//   - A wrapped store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Name = strings.TrimSpace(request.Name)
	request.Email = normalizeEmail(request.Email)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", request.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.idGenerator.Generate(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.RegisterUser").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email, a wrong password and a malformed request all return
// ErrInvalidCredentials so that callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Email = normalizeEmail(request.Email)

	// A malformed email or password cannot match any account and is
	// reported like a wrong password.
	if err := a.validator.Validate(ctx, request); err != nil {
		_ = utils.CheckPassword(a.getDummyHash(), truncatePassword(request.Password))
		log.Info().Err(err).Str("func", "authService.Login").Msg("malformed login request")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		_ = utils.CheckPassword(a.getDummyHash(), request.Password)
		log.Info().Str("func", "authService.Login").Str("email", request.Email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = utils.CheckPassword(foundUser.PasswordHash, request.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Info().Str("func", "authService.Login").Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("user_id", foundUser.ID.String()).Msg("password check failed")
		return models.User{}, fmt.Errorf("password check failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user ID as subject, the user's name and email, the
// configured issuer and audience, and expires after the configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.jwtParams, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Str("user_id", user.ID.String()).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens return ErrTokenIsExpired; any other failure (bad signature,
// wrong algorithm, issuer or audience, malformed subject) returns
// ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.jwtParams)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

func (a *authService) getDummyHash() string {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = utils.HashPassword(a.idGenerator.Generate().String(), a.bcryptCost)
	})

	return a.dummyHash
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// truncatePassword keeps password within the bcrypt input limit.
func truncatePassword(password string) string {
	if len(password) > validators.MaxPasswordBytes {
		return password[:validators.MaxPasswordBytes]
	}
	return password
}
