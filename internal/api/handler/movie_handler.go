package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/streamflix/streaming-api/internal/api/metrics"
	"github.com/streamflix/streaming-api/internal/core/ports"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	catalog ports.CatalogService
}

func NewMovieHandler(catalog ports.CatalogService) *MovieHandler {
	return &MovieHandler{catalog: catalog}
}

// List handles GET /movies — the full catalog, unfiltered.
//
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Movie
// @Failure      401  {object}  map[string]string
// @Router       /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

// Get handles GET /movies/:id. Malformed and unknown identifiers share a
// single 400 response.
//
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Movie identifier"
// @Success      200  {object}  domain.Movie
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c echo.Context) error {
	movie, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

// Random handles GET /random — a uniformly chosen catalog entry. An empty
// catalog yields 204 rather than an error.
//
// @Summary      Get a random movie
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Movie
// @Success      204  "catalog is empty"
// @Failure      401  {object}  map[string]string
// @Router       /random [get]
func (h *MovieHandler) Random(c echo.Context) error {
	movie, err := h.catalog.Random(c.Request().Context())
	if err != nil {
		return err
	}
	if movie == nil {
		metrics.RandomPicksTotal.WithLabelValues("empty").Inc()
		return c.NoContent(http.StatusNoContent)
	}

	metrics.RandomPicksTotal.WithLabelValues("hit").Inc()
	return c.JSON(http.StatusOK, movie)
}
