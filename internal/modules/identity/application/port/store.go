package port

import (
	"context"
	"errors"
	"time"

	"mesaYaApi/internal/modules/identity/domain"
)

var (
	// ErrNoSession signals an absent or expired session token.
	ErrNoSession = errors.New("no active session")
	// ErrUserNotFound signals that the referenced identity does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// SessionStore persists sessions as two keys: the session token entry mapping
// a session id onto its user, and the serialized identity record itself.
type SessionStore interface {
	SaveToken(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	LookupToken(ctx context.Context, sessionID string) (string, error)
	DeleteToken(ctx context.Context, sessionID string) error

	SaveUser(ctx context.Context, user *domain.User) error
	LoadUser(ctx context.Context, userID string) (*domain.User, error)
}
