package client

import (
	"context"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// Movies returns the catalog resource. Near-static: the catalog rarely
// changes within a session, so it is fetched once and cached.
func (c *Client) Movies() *Resource[[]domain.Movie] {
	fetch := func(ctx context.Context) ([]domain.Movie, error) {
		var movies []domain.Movie
		if err := c.get(ctx, "/movies", &movies); err != nil {
			return nil, err
		}
		return movies, nil
	}
	return newResource(fetch, true, []domain.Movie{})
}

// Movie returns the single-movie resource for id. Conditional: when id is
// empty the resource is disabled and never issues a request.
func (c *Client) Movie(id string) *Resource[*domain.Movie] {
	if id == "" {
		return disabledResource[*domain.Movie]()
	}
	fetch := func(ctx context.Context) (*domain.Movie, error) {
		var movie domain.Movie
		if err := c.get(ctx, "/movies/"+id, &movie); err != nil {
			return nil, err
		}
		return &movie, nil
	}
	return newResource(fetch, true, nil)
}

// Random returns the featured-movie resource. Near-static: one pick is
// held for the session rather than rerolled on every read. A nil value
// with no error means the catalog is empty.
func (c *Client) Random() *Resource[*domain.Movie] {
	fetch := func(ctx context.Context) (*domain.Movie, error) {
		var movie *domain.Movie
		if err := c.get(ctx, "/random", &movie); err != nil {
			return nil, err
		}
		return movie, nil
	}
	return newResource(fetch, true, nil)
}

// Favorites returns the favorites-list resource. Near-static, but exposed
// with Mutate so ToggleFavorite can push optimistic updates.
func (c *Client) Favorites() *Resource[[]domain.Movie] {
	fetch := func(ctx context.Context) ([]domain.Movie, error) {
		var movies []domain.Movie
		if err := c.get(ctx, "/favorites", &movies); err != nil {
			return nil, err
		}
		return movies, nil
	}
	return newResource(fetch, true, []domain.Movie{})
}

// CurrentUser returns the signed-in user's resource. Mutable: refetched on
// every Get so favorite toggles are reflected promptly.
func (c *Client) CurrentUser() *Resource[*domain.User] {
	fetch := func(ctx context.Context) (*domain.User, error) {
		var user domain.User
		if err := c.get(ctx, "/current", &user); err != nil {
			return nil, err
		}
		return &user, nil
	}
	return newResource(fetch, false, nil)
}

// ToggleFavorite adds or removes a favorite with an optimistic update on
// the favorites resource: the cached list changes before the request is
// sent, and a failed request invalidates the cache so the next read
// reconciles with the server. Returns the updated user on success.
func (c *Client) ToggleFavorite(ctx context.Context, favorites *Resource[[]domain.Movie], movie domain.Movie, favored bool) (*domain.User, error) {
	cached, _ := favorites.Cached()

	optimistic := make([]domain.Movie, 0, len(cached)+1)
	if favored {
		for _, m := range cached {
			if m.ID != movie.ID {
				optimistic = append(optimistic, m)
			}
		}
	} else {
		optimistic = append(optimistic, cached...)
		optimistic = append(optimistic, movie)
	}
	favorites.Mutate(optimistic)

	var (
		user *domain.User
		err  error
	)
	if favored {
		user, err = c.RemoveFavorite(ctx, movie.ID)
	} else {
		user, err = c.AddFavorite(ctx, movie.ID)
	}
	if err != nil {
		favorites.Invalidate()
		return nil, err
	}

	// Reconcile with the server in the background now that the mutation
	// has been confirmed.
	go func() {
		_ = favorites.Revalidate(context.Background())
	}()

	return user, nil
}
