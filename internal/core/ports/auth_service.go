package ports

import (
	"context"
	"time"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// SessionStore persists session revocations and password-reset tokens with a
// bounded lifetime (Redis).
type SessionStore interface {
	// Revoke marks a token id as signed out until its natural expiry.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// StoreResetToken records a single-use password reset token for the user.
	StoreResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

// Mailer delivers password-reset requests. Delivery is an external concern;
// implementations may hand off to a provider or simply log.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token   string
	User    *domain.User
	Profile *domain.Profile
}

// AuthService implements the session lifecycle: sign in, sign out, password
// reset, and profile/avatar management.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Logout revokes the given token id for the remainder of its lifetime.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	// RequestPasswordReset issues a reset token. It does not reveal whether
	// the account exists.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and sets the new password.
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context, userID string) (*domain.Profile, error)
	ChangeAvatar(ctx context.Context, userID, avatarURL string) (*domain.Profile, error)
}
