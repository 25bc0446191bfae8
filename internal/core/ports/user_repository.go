package ports

import (
	"context"

	"github.com/sirh-molino/hr-api/internal/core/domain"
)

// UserRepository defines persistence for authentication users and their
// profiles.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	FindProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, p *domain.Profile) error
	UpdateAvatar(ctx context.Context, userID, avatarURL string) error
}
