package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/money-tracker/internal/config"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/internal/mock"
	"github.com/MKhiriev/money-tracker/internal/store"
	"github.com/MKhiriev/money-tracker/internal/utils"
	"github.com/MKhiriev/money-tracker/internal/validators"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "money-tracker-test",
		TokenDuration: time.Hour,
		BcryptCost:    bcrypt.MinCost,
		Version:       "1.0.0",
	}
}

func newTestAuthService(t *testing.T, cfg config.App) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, cfg, logger.Nop()), repo
}

func registeredUser(t *testing.T, password string) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, "Alice", user.Name)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.NotEqual(t, "secret", user.PasswordHash)
			assert.NoError(t, utils.CheckPassword(user.PasswordHash, "secret"))
			assert.False(t, user.CreatedAt.IsZero())
			return user, nil
		})

	user, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "  Alice ",
		Email:    "  Alice@Example.COM ",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestRegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
		wantErr error
	}{
		{name: "empty name", request: models.RegisterRequest{Email: "a@b.com", Password: "pw"}, wantErr: validators.ErrEmptyName},
		{name: "bad email", request: models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "pw"}, wantErr: validators.ErrInvalidEmail},
		{name: "empty password", request: models.RegisterRequest{Name: "A", Email: "a@b.com"}, wantErr: validators.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t, testAppConfig())

			_, err := svc.RegisterUser(context.Background(), tt.request)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret",
	})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	stored := registeredUser(t, "secret")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: " ALICE@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(registeredUser(t, "secret"), nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "secret"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

func TestLogin_RepositoryError(t *testing.T) {
	svc, repo := newTestAuthService(t, testAppConfig())
	dbErr := errors.New("connection reset")

	repo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "secret"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MalformedRequestIsInvalidCredentials(t *testing.T) {
	tests := []struct {
		name    string
		request models.LoginRequest
	}{
		{name: "empty password", request: models.LoginRequest{Email: "alice@example.com"}},
		{name: "malformed email", request: models.LoginRequest{Email: "not-an-email", Password: "secret"}},
		{name: "empty email", request: models.LoginRequest{Password: "secret"}},
		{name: "password over bcrypt limit", request: models.LoginRequest{Email: "alice@example.com", Password: strings.Repeat("p", 80)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository call is expected
			svc, _ := newTestAuthService(t, testAppConfig())

			_, err := svc.Login(context.Background(), tt.request)

			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.NotErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestCreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())
	user := models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)

	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, "Alice", parsed.Claims.Name)
	assert.Equal(t, "alice@example.com", parsed.Claims.Email)
	assert.Equal(t, "money-tracker-test", parsed.Claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), parsed.Claims.ExpiresAt.Time, time.Minute)
}

func TestCreateToken_NilUser(t *testing.T) {
	svc, _ := newTestAuthService(t, testAppConfig())

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenDuration = -time.Minute
	issuer, _ := newTestAuthService(t, cfg)

	token, err := issuer.CreateToken(context.Background(), models.User{ID: uuid.New()})
	require.NoError(t, err)

	svc, _ := newTestAuthService(t, testAppConfig())
	_, err = svc.ParseToken(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_Invalid(t *testing.T) {
	otherKey := testAppConfig()
	otherKey.TokenSignKey = "another-key"
	foreign, _ := newTestAuthService(t, otherKey)
	foreignToken, err := foreign.CreateToken(context.Background(), models.User{ID: uuid.New()})
	require.NoError(t, err)

	otherIssuer := testAppConfig()
	otherIssuer.TokenIssuer = "someone-else"
	stranger, _ := newTestAuthService(t, otherIssuer)
	strangerToken, err := stranger.CreateToken(context.Background(), models.User{ID: uuid.New()})
	require.NoError(t, err)

	svc, _ := newTestAuthService(t, testAppConfig())

	for name, raw := range map[string]string{
		"garbage":      "not.a.token",
		"empty":        "",
		"wrong key":    foreignToken.SignedString,
		"wrong issuer": strangerToken.SignedString,
		"alg none":     "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiIxIn0.",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}
