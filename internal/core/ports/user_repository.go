package ports

import (
	"context"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
// Every favorite mutation is a single atomic update against one user
// document; concurrent toggles resolve last-write-wins at the store.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// AddFavorite appends movieID to the user's favorite list. The append is
	// not deduplicated; repeated calls produce repeated entries.
	AddFavorite(ctx context.Context, email, movieID string) (*domain.User, error)
	// RemoveFavorite removes every occurrence of movieID from the user's
	// favorite list.
	RemoveFavorite(ctx context.Context, email, movieID string) (*domain.User, error)
}
