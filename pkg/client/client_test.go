package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

// fakeAPI is a minimal in-memory stand-in for the streaming API.
type fakeAPI struct {
	mu        sync.Mutex
	catalog   []domain.Movie
	favorites []string
	user      domain.User
	token     string
	requests  map[string]int
}

func newFakeAPI(catalog ...domain.Movie) *fakeAPI {
	return &fakeAPI{
		catalog:  catalog,
		user:     domain.User{ID: "u1", Email: "a@example.com", Name: "Alice", FavoriteIDs: []string{}},
		token:    "tok-1",
		requests: map[string]int{},
	}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[key]
}

func (f *fakeAPI) currentUser() domain.User {
	u := f.user
	u.FavoriteIDs = append([]string{}, f.favorites...)
	return u
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	authed := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not signed in"})
			return false
		}
		return true
	}

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests["login"]++
		_ = json.NewEncoder(w).Encode(map[string]any{"token": f.token, "user": f.currentUser()})
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] == "taken@example.com" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Email taken"})
			return
		}
		_ = json.NewEncoder(w).Encode(domain.User{ID: "u2", Email: body["email"], Name: body["name"], FavoriteIDs: []string{}})
	})
	mux.HandleFunc("GET /movies", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests["movies"]++
		_ = json.NewEncoder(w).Encode(f.catalog)
	})
	mux.HandleFunc("GET /movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests["movie"]++
		for _, m := range f.catalog {
			if m.ID == r.PathValue("id") {
				_ = json.NewEncoder(w).Encode(m)
				return
			}
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid ID"})
	})
	mux.HandleFunc("GET /random", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		if len(f.catalog) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(f.catalog[0])
	})
	mux.HandleFunc("GET /favorites", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.requests["favorites"]++
		out := []domain.Movie{}
		for _, m := range f.catalog {
			if slices.Contains(f.favorites, m.ID) {
				out = append(out, m)
			}
		}
		_ = json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /favorite", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.favorites = append(f.favorites, body["movieId"])
		_ = json.NewEncoder(w).Encode(f.currentUser())
	})
	mux.HandleFunc("DELETE /favorite", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.favorites = slices.DeleteFunc(f.favorites, func(id string) bool { return id == body["movieId"] })
		_ = json.NewEncoder(w).Encode(f.currentUser())
	})
	mux.HandleFunc("GET /current", func(w http.ResponseWriter, r *http.Request) {
		if !authed(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(f.currentUser())
	})

	return mux
}

func testClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClient_LoginStoresToken(t *testing.T) {
	api := newFakeAPI(domain.Movie{ID: "m1", Title: "First"})
	c := testClient(t, api)

	user, err := c.Login(context.Background(), "a@example.com", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.Email != "a@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The stored token authenticates subsequent calls.
	movies, err := c.Movies().Get(context.Background())
	if err != nil {
		t.Fatalf("movies failed: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(movies))
	}
}

func TestClient_Register_EmailTaken(t *testing.T) {
	c := testClient(t, newFakeAPI())

	_, err := c.Register(context.Background(), "taken@example.com", "Alice", "pass")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Message != "Email taken" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestClient_Unauthenticated(t *testing.T) {
	c := testClient(t, newFakeAPI(domain.Movie{ID: "m1"}))

	_, err := c.Movies().Get(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
}

func TestClient_MoviesCachedAcrossReads(t *testing.T) {
	api := newFakeAPI(domain.Movie{ID: "m1"})
	c := testClient(t, api)
	c.SetToken(api.token)

	movies := c.Movies()
	for range 3 {
		if _, err := movies.Get(context.Background()); err != nil {
			t.Fatalf("get failed: %v", err)
		}
	}
	if got := api.count("movies"); got != 1 {
		t.Fatalf("expected a single catalog request, got %d", got)
	}
}

func TestClient_Movie_ConditionalFetch(t *testing.T) {
	api := newFakeAPI(domain.Movie{ID: "m1", Title: "First"})
	c := testClient(t, api)
	c.SetToken(api.token)

	// Absent parameter: no request at all.
	movie, err := c.Movie("").Get(context.Background())
	if err != nil || movie != nil {
		t.Fatalf("expected disabled resource to return nothing, got %v %v", movie, err)
	}
	if api.count("movie") != 0 {
		t.Fatalf("disabled resource issued a request")
	}

	movie, err = c.Movie("m1").Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if movie == nil || movie.Title != "First" {
		t.Fatalf("unexpected movie: %+v", movie)
	}
}

func TestClient_Random_EmptyCatalog(t *testing.T) {
	api := newFakeAPI()
	c := testClient(t, api)
	c.SetToken(api.token)

	movie, err := c.Random().Get(context.Background())
	if err != nil {
		t.Fatalf("expected no error on empty catalog, got %v", err)
	}
	if movie != nil {
		t.Fatalf("expected no movie, got %+v", movie)
	}
}

func TestClient_ToggleFavorite_RoundTrip(t *testing.T) {
	m1 := domain.Movie{ID: "m1", Title: "First"}
	api := newFakeAPI(m1)
	c := testClient(t, api)
	c.SetToken(api.token)

	favorites := c.Favorites()
	if _, err := favorites.Get(context.Background()); err != nil {
		t.Fatalf("initial favorites failed: %v", err)
	}

	user, err := c.ToggleFavorite(context.Background(), favorites, m1, false)
	if err != nil {
		t.Fatalf("toggle on failed: %v", err)
	}
	if !slices.Contains(user.FavoriteIDs, "m1") {
		t.Fatalf("expected m1 in favorites, got %v", user.FavoriteIDs)
	}
	if cached, _ := favorites.Cached(); !slices.ContainsFunc(cached, func(m domain.Movie) bool { return m.ID == "m1" }) {
		t.Fatalf("optimistic update missing: %v", cached)
	}

	// Let the background revalidation settle before toggling back off.
	deadline := time.Now().Add(2 * time.Second)
	for api.count("favorites") < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("background revalidation never ran")
		}
		time.Sleep(5 * time.Millisecond)
	}

	user, err = c.ToggleFavorite(context.Background(), favorites, m1, true)
	if err != nil {
		t.Fatalf("toggle off failed: %v", err)
	}
	if slices.Contains(user.FavoriteIDs, "m1") {
		t.Fatalf("expected m1 removed, got %v", user.FavoriteIDs)
	}
	if cached, _ := favorites.Cached(); slices.ContainsFunc(cached, func(m domain.Movie) bool { return m.ID == "m1" }) {
		t.Fatalf("optimistic removal missing: %v", cached)
	}
}

func TestClient_ToggleFavorite_FailureInvalidates(t *testing.T) {
	m1 := domain.Movie{ID: "m1", Title: "First"}
	api := newFakeAPI(m1)
	c := testClient(t, api)
	// Wrong token: the mutation will fail with 401.
	c.SetToken("wrong")

	favorites := c.Favorites()
	favorites.Mutate([]domain.Movie{})

	if _, err := c.ToggleFavorite(context.Background(), favorites, m1, false); err == nil {
		t.Fatalf("expected toggle to fail")
	}
	if _, loaded := favorites.Cached(); loaded {
		t.Fatalf("expected cache invalidated after failed mutation")
	}
}
