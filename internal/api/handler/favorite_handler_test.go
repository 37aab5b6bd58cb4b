package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

type stubFavoritesService struct {
	listFn   func(ctx context.Context, user *domain.User) ([]domain.Movie, error)
	addFn    func(ctx context.Context, user *domain.User, movieID string) (*domain.User, error)
	removeFn func(ctx context.Context, user *domain.User, movieID string) (*domain.User, error)
}

func (s *stubFavoritesService) List(ctx context.Context, user *domain.User) ([]domain.Movie, error) {
	return s.listFn(ctx, user)
}

func (s *stubFavoritesService) Add(ctx context.Context, user *domain.User, movieID string) (*domain.User, error) {
	return s.addFn(ctx, user, movieID)
}

func (s *stubFavoritesService) Remove(ctx context.Context, user *domain.User, movieID string) (*domain.User, error) {
	return s.removeFn(ctx, user, movieID)
}

func favoriteContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/favorite", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/favorites", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "u1", Email: "a@example.com", FavoriteIDs: []string{}})
	return c, rec
}

func TestFavoriteHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubFavoritesService{
		listFn: func(_ context.Context, user *domain.User) ([]domain.Movie, error) {
			if user.ID != "u1" {
				t.Fatalf("unexpected user: %+v", user)
			}
			return []domain.Movie{{ID: "m1", Title: "First"}}, nil
		},
	}
	handler := NewFavoriteHandler(stub)

	c, rec := favoriteContext(e, http.MethodGet, "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var movies []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &movies); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(movies) != 1 || movies[0]["id"] != "m1" {
		t.Fatalf("unexpected payload: %+v", movies)
	}
}

func TestFavoriteHandler_List_NoSession(t *testing.T) {
	e := newTestEcho()
	handler := NewFavoriteHandler(&stubFavoritesService{})

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestFavoriteHandler_Add(t *testing.T) {
	e := newTestEcho()
	stub := &stubFavoritesService{
		addFn: func(_ context.Context, user *domain.User, movieID string) (*domain.User, error) {
			if movieID != "m1" {
				t.Fatalf("unexpected movie id: %q", movieID)
			}
			updated := *user
			updated.FavoriteIDs = append([]string{}, "m1")
			return &updated, nil
		},
	}
	handler := NewFavoriteHandler(stub)

	c, rec := favoriteContext(e, http.MethodPost, `{"movieId":"m1"}`)
	if err := handler.Add(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	ids, _ := user["favoriteIds"].([]any)
	if len(ids) != 1 || ids[0] != "m1" {
		t.Fatalf("unexpected favorites: %+v", user["favoriteIds"])
	}
}

func TestFavoriteHandler_Add_MissingMovieID(t *testing.T) {
	e := newTestEcho()
	stub := &stubFavoritesService{
		addFn: func(_ context.Context, _ *domain.User, _ string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewFavoriteHandler(stub)

	c, _ := favoriteContext(e, http.MethodPost, `{}`)
	err := handler.Add(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestFavoriteHandler_Add_UnknownMovie(t *testing.T) {
	e := newTestEcho()
	stub := &stubFavoritesService{
		addFn: func(_ context.Context, _ *domain.User, _ string) (*domain.User, error) {
			return nil, domain.ErrInvalidMovieID
		},
	}
	handler := NewFavoriteHandler(stub)

	c, _ := favoriteContext(e, http.MethodPost, `{"movieId":"missing"}`)
	if err := handler.Add(c); !errors.Is(err, domain.ErrInvalidMovieID) {
		t.Fatalf("expected ErrInvalidMovieID, got %v", err)
	}
}

func TestFavoriteHandler_Remove(t *testing.T) {
	e := newTestEcho()
	stub := &stubFavoritesService{
		removeFn: func(_ context.Context, user *domain.User, movieID string) (*domain.User, error) {
			if movieID != "m1" {
				t.Fatalf("unexpected movie id: %q", movieID)
			}
			updated := *user
			updated.FavoriteIDs = []string{}
			return &updated, nil
		},
	}
	handler := NewFavoriteHandler(stub)

	c, rec := favoriteContext(e, http.MethodDelete, `{"movieId":"m1"}`)
	if err := handler.Remove(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
