package ports

import (
	"context"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// RegisterInput carries the fields required to create a credentials account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given session token for the remainder of its
	// lifetime. Revoking an already-expired token is a no-op.
	Logout(ctx context.Context, token string) error
}
