package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elparchetipk/go-auth-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token verification failure kinds. Exactly two are distinguished so that
// callers can report expiry separately from every other defect; both
// ultimately map to an unauthorized response.
var (
	// ErrTokenExpired is returned when the token's signature and structure are
	// valid but its "exp" claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned for every other verification failure:
	// malformed structure, wrong signature, wrong issuer, bad subject.
	ErrTokenInvalid = errors.New("token is invalid")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given subject.
//
// The token carries the following registered claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a base-10 string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or
// zero, or if signing fails.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the given JWT string and extracts its
// subject.
//
// Verification covers the HMAC-SHA256 signature, the issuer claim against
// tokenIssuer, and the expiration claim. On success the returned token has
// UserID populated from the "sub" claim.
//
// Failure kinds:
//   - [ErrTokenExpired] — signature and structure are fine, the token is
//     merely past its "exp" claim. Expiry is terminal; there is no renewal.
//   - [ErrTokenInvalid] — anything else: tampered signature, malformed
//     structure, wrong issuer, missing or non-numeric subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return models.Token{}, fmt.Errorf("%w: missing subject claim", ErrTokenInvalid)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: non-numeric subject claim: %w", ErrTokenInvalid, err)
	}

	return models.Token{Token: token, UserID: userID}, nil
}

// ParseBearerToken extracts the token value from an "Authorization" header of
// the form "Bearer <token>". The scheme check is case-insensitive.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(authorizationHeader))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	if parts[1] == "" {
		return "", errors.New("empty bearer token")
	}
	return parts[1], nil
}
