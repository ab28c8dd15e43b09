// Package utils provides general-purpose helper utilities
// used across different parts of the application: typed context keys,
// HMAC hashing, JSON response writing, the resty HTTP client and JWT
// issuing and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-team-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated [models.User].
var UserCtxKey = contextKey("user")

// WithUser stores user in ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the user stored by [WithUser].
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
