package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/money-tracker/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// JWTParams groups the settings shared by token issuing and validation.
type JWTParams struct {
	// Issuer is written to and required in the "iss" claim.
	Issuer string
	// Audience, when non-empty, is written to and required in the "aud" claim.
	Audience string
	// Duration is the token lifetime counted from issuance.
	Duration time.Duration
	// SignKey is the HMAC-SHA256 secret.
	SignKey string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): only when params.Audience is set
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus params.Duration
//   - name, email: copied from user
//
// Returns an error if the issuer or sign key are empty, the duration is
// zero or the user ID is nil.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, user)
func GenerateJWTToken(params JWTParams, user models.User) (models.Token, error) {
	if params.Issuer == "" || params.Duration == 0 || params.SignKey == "" || user.ID == uuid.Nil {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if params.Audience != "" {
		claims.Audience = jwt.ClaimStrings{params.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{JWT: token, Claims: claims, SignedString: tokenString, UserID: user.ID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method must be HS256 ("none" and asymmetric algorithms are rejected)
//   - Signature verification using params.SignKey
//   - Issuer (iss) claim check against params.Issuer
//   - Audience (aud) claim check when params.Audience is set
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence and conversion to a uuid
//
// Errors wrap the underlying jwt errors, so callers may test for
// jwt.ErrTokenExpired with errors.Is.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, params)
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // ask the user to log in again
//	}
func ValidateAndParseJWTToken(tokenString string, params JWTParams) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(params.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if params.Audience != "" {
		options = append(options, jwt.WithAudience(params.Audience))
	}

	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, options...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := subjectToUserID(claims)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{JWT: token, Claims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseUnverifiedClaims decodes the claims of a token without checking its
// signature. It is only suitable for displaying information about a token
// the caller already holds, never for authorization.
func ParseUnverifiedClaims(tokenString string) (models.TokenClaims, error) {
	claims := &models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.TokenClaims{}, fmt.Errorf("error decoding token: %w", err)
	}

	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

func subjectToUserID(claims *models.TokenClaims) (uuid.UUID, error) {
	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return uuid.Nil, errors.New("empty subject error")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error occurred during converting subject to user ID: %w", err)
	}

	return userID, nil
}
