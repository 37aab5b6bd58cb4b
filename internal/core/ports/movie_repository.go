package ports

import (
	"context"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// MovieRepository defines read access to the movie catalog. The catalog is
// seeded externally; no create/update/delete operations exist.
type MovieRepository interface {
	FindAll(ctx context.Context) ([]domain.Movie, error)
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	// FindByIDs returns the movies whose identifiers appear in ids. Order is
	// not guaranteed to match ids; unknown identifiers are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Movie, error)
	Count(ctx context.Context) (int64, error)
	// FindAtOffset returns the single movie at the given offset in the
	// collection's natural order (skip-N, take-1).
	FindAtOffset(ctx context.Context, offset int64) (*domain.Movie, error)
}
