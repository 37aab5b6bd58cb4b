package ports

import (
	"context"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// FavoritesService manages a user's favorite-movie list.
type FavoritesService interface {
	List(ctx context.Context, user *domain.User) ([]domain.Movie, error)
	Add(ctx context.Context, user *domain.User, movieID string) (*domain.User, error)
	Remove(ctx context.Context, user *domain.User, movieID string) (*domain.User, error)
}
