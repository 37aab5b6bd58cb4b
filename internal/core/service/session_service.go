package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/streamflix/streaming-api/internal/core/domain"
	"github.com/streamflix/streaming-api/internal/core/ports"
)

// SessionService validates session tokens against the user store. Each call
// performs exactly one user read; nothing is cached between requests, so a
// deleted account invalidates its outstanding sessions immediately.
type SessionService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
}

func NewSessionService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string) *SessionService {
	return &SessionService{users: users, sessions: sessions, jwtSecret: jwtSecret}
}

// Validate resolves a token to the current user record. Missing token,
// invalid signature, missing email claim, revoked jti, and a stale account
// all collapse to domain.ErrUnauthenticated.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, domain.ErrUnauthenticated
	}

	if jti, _ := claims["jti"].(string); jti != "" {
		revoked, err := s.sessions.IsRevoked(ctx, jti)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, domain.ErrUnauthenticated
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}
