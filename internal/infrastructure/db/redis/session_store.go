package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// SessionStore keeps short-lived session state in Redis: revoked token ids
// and single-use password-reset tokens. Both expire on their own, so the
// store never needs cleanup.
//
// Key formats:
//
//	revoked:<jti>      → "1", TTL = remaining token lifetime
//	pwreset:<token>    → user id, TTL = reset window
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Revoke marks the token id as signed out for the given lifetime.
func (s *SessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, revokedKey(tokenID), "1", ttl).Err()
}

// IsRevoked reports whether the token id has been signed out.
func (s *SessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

// StoreResetToken records a password-reset token for the user.
func (s *SessionStore) StoreResetToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, resetKey(token), userID, ttl).Err()
}

// ConsumeResetToken returns the user id a reset token was issued for and
// removes it, so a token can only be used once. An unknown or expired token
// yields domain.ErrInvalidCredentials.
func (s *SessionStore) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, resetKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("consume reset token: %w", err)
	}
	return userID, nil
}

func revokedKey(tokenID string) string {
	return "revoked:" + tokenID
}

func resetKey(token string) string {
	return "pwreset:" + token
}
