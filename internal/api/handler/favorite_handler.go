package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/streamflix/streaming-api/internal/api/metrics"
	"github.com/streamflix/streaming-api/internal/core/ports"
)

// FavoriteHandler handles HTTP requests for the current user's favorites.
type FavoriteHandler struct {
	favorites ports.FavoritesService
}

func NewFavoriteHandler(favorites ports.FavoritesService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

type favoriteRequest struct {
	MovieID string `json:"movieId" validate:"required"`
}

// List handles GET /favorites — the movies referenced by the current
// user's favorite list.
//
// @Summary      List favorite movies
// @Tags         favorites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Movie
// @Failure      401  {object}  map[string]string
// @Router       /favorites [get]
func (h *FavoriteHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	movies, err := h.favorites.List(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Add handles POST /favorite. Adds are not deduplicated; the updated user
// is returned.
//
// @Summary      Add a movie to favorites
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      favoriteRequest  true  "Movie to favorite"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /favorite [post]
func (h *FavoriteHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.favorites.Add(c.Request().Context(), user, req.MovieID)
	if err != nil {
		return err
	}

	metrics.FavoriteMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Remove handles DELETE /favorite. All occurrences of the movie are
// removed; the updated user is returned.
//
// @Summary      Remove a movie from favorites
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      favoriteRequest  true  "Movie to unfavorite"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /favorite [delete]
func (h *FavoriteHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.favorites.Remove(c.Request().Context(), user, req.MovieID)
	if err != nil {
		return err
	}

	metrics.FavoriteMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, updated)
}
