package ports

import (
	"context"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// SessionValidator resolves a session token to the current user record.
// Every failure mode — missing token, bad signature, revoked jti, account
// deleted since issuance — collapses to domain.ErrUnauthenticated.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (*domain.User, error)
}
