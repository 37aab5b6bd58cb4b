package ports

import (
	"context"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// CatalogService defines read operations over the movie catalog.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	// Random returns a uniformly chosen movie, or (nil, nil) when the
	// catalog is empty.
	Random(ctx context.Context) (*domain.Movie, error)
}
