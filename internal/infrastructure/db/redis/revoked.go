package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedSessionStore records signed-out session tokens by jti so the
// session validator can reject them before their natural expiry.
// Key format: revoked:<jti>
type RevokedSessionStore struct {
	client *redis.Client
}

// NewRevokedSessionStore creates a RevokedSessionStore wrapping the given client.
func NewRevokedSessionStore(client *redis.Client) *RevokedSessionStore {
	return &RevokedSessionStore{client: client}
}

// Revoke marks the jti as signed out for ttl, after which the token would
// have expired anyway.
func (s *RevokedSessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether the jti has been signed out.
func (s *RevokedSessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevokedSessionStore) key(jti string) string {
	return "revoked:" + jti
}
