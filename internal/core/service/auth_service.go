package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

const resetTokenTTL = 30 * time.Minute

// AuthService implements the session lifecycle: register, login with lazy
// profile creation, logout via token revocation, and password reset requests.
type AuthService struct {
	repo      ports.UserRepository
	sessions  ports.SessionStore
	mailer    ports.Mailer
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionStore, mailer ports.Mailer, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		sessions:  sessions,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates the user and returns a signed session token. The user's
// profile is created lazily on the first successful login; subsequent logins
// read it as-is.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	profile, err := s.ensureProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{Token: token, User: user, Profile: profile}, nil
}

// Logout revokes the token id until the token would have expired anyway.
// A revoked token transitions the session to unauthenticated immediately.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.sessions.Revoke(ctx, tokenID, ttl); err != nil {
		s.logger.Error().Err(err).Str("token_id", tokenID).Msg("failed to revoke session")
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// RequestPasswordReset issues a single-use reset token and hands it to the
// mailer. The outcome never reveals whether the account exists.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("email", email).Msg("password reset requested for unknown account")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := s.sessions.StoreResetToken(ctx, token, user.ID, resetTokenTTL); err != nil {
		return fmt.Errorf("password reset: %w", err)
	}
	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to send reset mail")
		return fmt.Errorf("password reset: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("password reset requested")
	return nil
}

// ResetPassword consumes a single-use reset token and replaces the user's
// password. An unknown or expired token fails as bad credentials.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return domain.ErrInvalidCredentials
	}

	userID, err := s.sessions.ConsumeResetToken(ctx, token)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("password reset completed")
	return nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.repo.FindProfile(ctx, userID)
}

// ChangeAvatar sets the profile picture; the URL must come from the avatar
// catalog.
func (s *AuthService) ChangeAvatar(ctx context.Context, userID, avatarURL string) (*domain.Profile, error) {
	if !validAvatar(avatarURL) {
		return nil, fmt.Errorf("%w: avatar no válido", domain.ErrValidation)
	}

	if err := s.repo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID).Msg("avatar updated")
	return s.repo.FindProfile(ctx, userID)
}

// ensureProfile returns the user's profile, creating it on first login.
func (s *AuthService) ensureProfile(ctx context.Context, user *domain.User) (*domain.Profile, error) {
	profile, err := s.repo.FindProfile(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	profile = &domain.Profile{
		UserID:      user.ID,
		DisplayName: displayNameFromEmail(user.Email),
		Email:       user.Email,
		AvatarURL:   domain.AvatarForEmail(user.Email),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", user.ID).Msg("profile created on first login")
	return profile, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"jti":   uuid.NewString(),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func validAvatar(url string) bool {
	for _, a := range domain.Avatars {
		if a == url {
			return true
		}
	}
	return false
}

func displayNameFromEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return email
	}
	return email[:at]
}
