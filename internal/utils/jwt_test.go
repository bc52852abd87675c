package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/money-tracker/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{
	ID:    uuid.MustParse("0190a6f2-7c1e-7b3a-9d4e-1f2a3b4c5d6e"),
	Name:  "Alice",
	Email: "alice@example.com",
}

func testParams() JWTParams {
	return JWTParams{
		Issuer:   "test-issuer",
		Audience: "test-audience",
		Duration: time.Hour,
		SignKey:  "secret-key",
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testParams(), testUser)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.JWT)
	assert.Equal(t, testUser.ID, token.UserID)
	assert.Equal(t, "test-issuer", token.Claims.Issuer)
	assert.Equal(t, testUser.ID.String(), token.Claims.Subject)
	assert.Equal(t, jwt.ClaimStrings{"test-audience"}, token.Claims.Audience)
	assert.Equal(t, "Alice", token.Claims.Name)
	assert.Equal(t, "alice@example.com", token.Claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.Claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_NoAudience(t *testing.T) {
	params := testParams()
	params.Audience = ""

	token, err := GenerateJWTToken(params, testUser)

	require.NoError(t, err)
	assert.Empty(t, token.Claims.Audience)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *JWTParams, u *models.User)
	}{
		{"empty issuer", func(p *JWTParams, u *models.User) { p.Issuer = "" }},
		{"zero duration", func(p *JWTParams, u *models.User) { p.Duration = 0 }},
		{"empty key", func(p *JWTParams, u *models.User) { p.SignKey = "" }},
		{"nil user id", func(p *JWTParams, u *models.User) { u.ID = uuid.Nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, user := testParams(), testUser
			tt.mutate(&params, &user)

			_, err := GenerateJWTToken(params, user)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken(testParams(), testUser)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, testParams())

	require.NoError(t, err)
	assert.Equal(t, testUser.ID, parsed.UserID)
	assert.Equal(t, "Alice", parsed.Claims.Name)
	assert.Equal(t, "alice@example.com", parsed.Claims.Email)
	assert.Equal(t, genToken.SignedString, parsed.SignedString)
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, err := GenerateJWTToken(testParams(), testUser)
	require.NoError(t, err)

	expiredParams := testParams()
	expiredParams.Duration = -time.Second
	expired, err := GenerateJWTToken(expiredParams, testUser)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Audience:  jwt.ClaimStrings{"test-audience"},
		Subject:   testUser.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Audience:  jwt.ClaimStrings{"test-audience"},
		Subject:   testUser.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	notUUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Audience:  jwt.ClaimStrings{"test-audience"},
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:   "test-issuer",
		Audience: jwt.ClaimStrings{"test-audience"},
		Subject:  testUser.ID.String(),
	}).SignedString([]byte("secret-key"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		mutate  func(p *JWTParams)
		expired bool
	}{
		{name: "wrong key", token: valid.SignedString, mutate: func(p *JWTParams) { p.SignKey = "wrong-key" }},
		{name: "wrong issuer", token: valid.SignedString, mutate: func(p *JWTParams) { p.Issuer = "fake-issuer" }},
		{name: "wrong audience", token: valid.SignedString, mutate: func(p *JWTParams) { p.Audience = "mobile" }},
		{name: "expired", token: expired.SignedString, expired: true},
		{name: "alg none", token: unsigned},
		{name: "other hmac alg", token: hs512},
		{name: "subject not uuid", token: notUUID},
		{name: "no expiry", token: noExpiry},
		{name: "malformed", token: "not.a.token"},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams()
			if tt.mutate != nil {
				tt.mutate(&params)
			}

			_, err := ValidateAndParseJWTToken(tt.token, params)

			require.Error(t, err)
			assert.Equal(t, tt.expired, errors.Is(err, jwt.ErrTokenExpired))
		})
	}
}

func TestParseUnverifiedClaims(t *testing.T) {
	token, err := GenerateJWTToken(testParams(), testUser)
	require.NoError(t, err)

	claims, err := ParseUnverifiedClaims(token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, testUser.ID.String(), claims.Subject)

	_, err = ParseUnverifiedClaims("garbage")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower-case scheme", header: "bearer abc", want: "abc"},
		{name: "extra whitespace", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
