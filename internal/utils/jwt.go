package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned by ValidateAndParseJWTToken when a token's
// signature, issuer, expiry, or subject claim fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateJWTToken issues a signed HMAC-SHA256 JWT carrying accountID as its
// subject claim. This is the bearer token handed back on a successful PAKE
// login finish (spec §4.2/§6); it authenticates subsequent requests but
// carries no password-derived material of its own.
func GenerateJWTToken(issuer string, accountID uuid.UUID, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   accountID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("sign jwt token: %w", err)
	}
	return signed, nil
}

// ValidateAndParseJWTToken verifies signature, issuer, and expiry, and
// returns the account id carried in the token's subject claim.
func ValidateAndParseJWTToken(tokenString, signKey, tokenIssuer string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: subject is not a valid account id", ErrInvalidToken)
	}
	return accountID, nil
}

// ParseBearerToken extracts the token string from a raw "Authorization:
// Bearer <token>" header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
