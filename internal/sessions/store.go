package sessions

import (
	"context"
	"errors"
)

// SessionUser is the authenticated user row kept server-side for the
// lifetime of a session.
type SessionUser struct {
	ID              uint   `json:"id"`
	UserName        string `json:"userName"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	RoleCode        int    `json:"roleCode"`
	RoleDescription string `json:"roleDescription"`
}

// Store keeps sessions keyed by opaque token. All session state flows
// through it; nothing is mutated on the request itself.
type Store interface {
	Create(ctx context.Context, user SessionUser) (string, error)

	Get(ctx context.Context, token string) (*SessionUser, error)

	Delete(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found")
