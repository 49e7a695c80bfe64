// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, HTTP response
// writing, and JWT bearer-token issuance/parsing.
package utils

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the key used to store the authenticated account's id in
// the request context. Used together with GetAccountIDFromContext for
// type-safe retrieval.
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext retrieves the authenticated account id from the
// context. ok is false if the value is missing or not a uuid.UUID.
func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(uuid.UUID)
	return accountID, ok
}
