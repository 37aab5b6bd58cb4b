// Package client is the Go consumer of the streaming API. It wraps the raw
// HTTP surface and layers per-resource response caching on top: near-static
// resources (catalog, favorites, single movie, random pick) are fetched once
// and served from cache, and mutations push optimistic updates before the
// server round trip completes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/streamflix/streaming-api/internal/core/domain"
)

const defaultRequestTimeout = 15 * time.Second

// APIError carries the status code and error envelope of a failed request.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client talks to the streaming API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.Mutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken seeds the session token, skipping the login call.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a Client against the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the session token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Register creates an account. The account is not signed in afterwards;
// call Login to obtain a session.
func (c *Client) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	body := map[string]string{"email": email, "name": name, "password": password}
	var user domain.User
	if err := c.send(ctx, http.MethodPost, "/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login signs in with credentials and stores the session token on the
// client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.send(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}

// Logout revokes the current session and clears the stored token.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.send(ctx, http.MethodPost, "/logout", nil, nil); err != nil {
		return err
	}
	c.SetToken("")
	return nil
}

// AddFavorite appends the movie to the signed-in user's favorites and
// returns the updated user.
func (c *Client) AddFavorite(ctx context.Context, movieID string) (*domain.User, error) {
	var user domain.User
	if err := c.send(ctx, http.MethodPost, "/favorite", map[string]string{"movieId": movieID}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RemoveFavorite removes the movie from the signed-in user's favorites and
// returns the updated user.
func (c *Client) RemoveFavorite(ctx context.Context, movieID string) (*domain.User, error) {
	var user domain.User
	if err := c.send(ctx, http.MethodDelete, "/favorite", map[string]string{"movieId": movieID}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
