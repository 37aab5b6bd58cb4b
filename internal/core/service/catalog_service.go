package service

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/streamflix/streaming-api/internal/core/domain"
	"github.com/streamflix/streaming-api/internal/core/ports"
)

// CatalogService exposes read operations over the movie catalog.
type CatalogService struct {
	movies ports.MovieRepository
	logger zerolog.Logger
}

func NewCatalogService(movies ports.MovieRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{movies: movies, logger: logger}
}

// List returns the full catalog, unfiltered and unpaginated.
func (s *CatalogService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.FindAll(ctx)
}

// Get fetches a single movie. A missing identifier and an identifier that
// resolves to no movie both yield domain.ErrInvalidMovieID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	if id == "" {
		return nil, domain.ErrInvalidMovieID
	}

	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMovieID) {
			s.logger.Debug().Str("movie_id", id).Msg("movie lookup missed")
		}
		return nil, err
	}
	return movie, nil
}

// Random draws a uniform index in [0, count) and fetches the movie at that
// offset. An empty catalog returns (nil, nil); callers treat a missing
// movie as a valid outcome.
func (s *CatalogService) Random(ctx context.Context) (*domain.Movie, error) {
	count, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		s.logger.Debug().Msg("random pick on empty catalog")
		return nil, nil
	}

	movie, err := s.movies.FindAtOffset(ctx, rand.Int64N(count))
	if err != nil {
		// The catalog shrank between count and fetch; treat like empty.
		if errors.Is(err, domain.ErrInvalidMovieID) {
			return nil, nil
		}
		return nil, err
	}
	return movie, nil
}
