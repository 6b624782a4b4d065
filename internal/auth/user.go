package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderUserID        = "X-User-ID"
)

var (
	ErrMissingSecret = errors.New("missing app secret")
	ErrInvalidSecret = errors.New("invalid app secret")
	ErrMissingUserID = errors.New("missing user id")
)

type userIDKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// Identity validates the app secret and the user id headers coming from the app.
// Sign-in itself happens in the managed auth provider, we only trust what the
// app forwards together with the shared secret.
type Identity struct {
	appSecret string
}

func NewIdentity(appSecret string) *Identity {
	return &Identity{appSecret: appSecret}
}

func (i *Identity) Resolve(secret, rawUserID string) (uuid.UUID, error) {
	if secret == "" {
		return uuid.Nil, ErrMissingSecret
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(i.appSecret)) != 1 {
		return uuid.Nil, ErrInvalidSecret
	}
	if rawUserID == "" {
		return uuid.Nil, ErrMissingUserID
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse user id: %w", err)
	}
	if userID == uuid.Nil {
		return uuid.Nil, ErrMissingUserID
	}
	return userID, nil
}
