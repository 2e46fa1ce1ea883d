// Package credstore persists the bearer token and the cached user profile
// across client restarts. It is the only durable state the client keeps
// about the session; everything else is derived from it at startup.
package credstore

import (
	"context"

	"github.com/littlerefugees/refugio-cli/internal/client/models"
)

// Fixed storage keys. Two keys only: the token and the serialized user.
const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// Store is the credential persistence contract.
//
// Absent values are reported as zero values with a nil error, never as
// errors: Token returns "" when no token is stored, User returns nil when no
// user is stored or when the stored payload cannot be decoded. Clear is
// idempotent and safe to call when nothing is stored.
type Store interface {
	SaveToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	RemoveToken(ctx context.Context) error

	SaveUser(ctx context.Context, user *models.User) error
	User(ctx context.Context) (*models.User, error)
	RemoveUser(ctx context.Context) error

	Clear(ctx context.Context) error
}
