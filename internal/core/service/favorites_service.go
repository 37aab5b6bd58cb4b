package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/streamflix/streaming-api/internal/core/domain"
	"github.com/streamflix/streaming-api/internal/core/ports"
)

// FavoritesService manages per-user favorite lists. Add does not
// deduplicate: toggling the same movie twice stores two entries, and a
// single Remove clears them all. Concurrent toggles on the same user are
// last-write-wins at the store.
type FavoritesService struct {
	users  ports.UserRepository
	movies ports.MovieRepository
	logger zerolog.Logger
}

func NewFavoritesService(users ports.UserRepository, movies ports.MovieRepository, logger zerolog.Logger) *FavoritesService {
	return &FavoritesService{users: users, movies: movies, logger: logger}
}

// List fetches the movies referenced by the user's favorite list. Order is
// not guaranteed to match the list; identifiers pointing at since-removed
// movies are skipped.
func (s *FavoritesService) List(ctx context.Context, user *domain.User) ([]domain.Movie, error) {
	if len(user.FavoriteIDs) == 0 {
		return []domain.Movie{}, nil
	}
	return s.movies.FindByIDs(ctx, user.FavoriteIDs)
}

// Add appends the movie to the user's favorites after checking it exists,
// and returns the updated user.
func (s *FavoritesService) Add(ctx context.Context, user *domain.User, movieID string) (*domain.User, error) {
	if _, err := s.movies.FindByID(ctx, movieID); err != nil {
		return nil, err
	}

	updated, err := s.users.AddFavorite(ctx, user.Email, movieID)
	if err != nil {
		s.logger.Error().Err(err).Str("movie_id", movieID).Msg("failed to add favorite")
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("movie_id", movieID).Msg("favorite added")
	return updated, nil
}

// Remove deletes every occurrence of the movie from the user's favorites
// and returns the updated user.
func (s *FavoritesService) Remove(ctx context.Context, user *domain.User, movieID string) (*domain.User, error) {
	if _, err := s.movies.FindByID(ctx, movieID); err != nil {
		return nil, err
	}

	updated, err := s.users.RemoveFavorite(ctx, user.Email, movieID)
	if err != nil {
		s.logger.Error().Err(err).Str("movie_id", movieID).Msg("failed to remove favorite")
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Str("movie_id", movieID).Msg("favorite removed")
	return updated, nil
}
