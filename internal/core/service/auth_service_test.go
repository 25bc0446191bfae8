package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirh-molino/hr-api/internal/core/domain"
	"github.com/sirh-molino/hr-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail  map[string]*domain.User
	profiles map[string]*domain.Profile
	nextID   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail:  make(map[string]*domain.User),
		profiles: make(map[string]*domain.Profile),
	}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.byEmail[user.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) FindProfile(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubUserRepo) SaveProfile(_ context.Context, p *domain.Profile) error {
	clone := *p
	r.profiles[p.UserID] = &clone
	return nil
}

func (r *stubUserRepo) UpdateAvatar(_ context.Context, userID, avatarURL string) error {
	p, ok := r.profiles[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	p.AvatarURL = avatarURL
	return nil
}

type stubSessionStore struct {
	revoked     map[string]bool
	resetTokens map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		revoked:     make(map[string]bool),
		resetTokens: make(map[string]string),
	}
}

func (s *stubSessionStore) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *stubSessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

func (s *stubSessionStore) StoreResetToken(_ context.Context, token, userID string, _ time.Duration) error {
	s.resetTokens[token] = userID
	return nil
}

func (s *stubSessionStore) ConsumeResetToken(_ context.Context, token string) (string, error) {
	userID, ok := s.resetTokens[token]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	delete(s.resetTokens, token)
	return userID, nil
}

type stubMailer struct {
	sentTo    []string
	lastToken string
}

func (m *stubMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.sentTo = append(m.sentTo, email)
	m.lastToken = token
	return nil
}

func authFixture() (*AuthService, *stubUserRepo, *stubSessionStore, *stubMailer) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	mailer := &stubMailer{}
	svc := NewAuthService(repo, sessions, mailer, "test-secret", time.Hour, discardLogger)
	return svc, repo, sessions, mailer
}

func registerUser(t *testing.T, svc *AuthService, email, password string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), email, password)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return user
}

// ---------------------------------------------------------------------------
// Register tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, repo, _, _ := authFixture()

	registerUser(t, svc, "ana@molino.co", "secret123")

	stored := repo.byEmail["ana@molino.co"]
	if stored == nil {
		t.Fatal("user not stored")
	}
	if stored.PasswordHash == "secret123" {
		t.Error("password must not be stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")) != nil {
		t.Error("stored hash must verify the original password")
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	svc, repo, _, _ := authFixture()

	registerUser(t, svc, "  Ana@Molino.CO ", "secret123")

	if _, ok := repo.byEmail["ana@molino.co"]; !ok {
		t.Error("email must be trimmed and lowercased")
	}
}

func TestAuthService_Register_RejectsBadInput(t *testing.T) {
	svc, _, _, _ := authFixture()

	for _, tc := range []struct{ email, password string }{
		{"", "secret"},
		{"no-at-sign", "secret"},
		{"ana@molino.co", ""},
	} {
		if _, err := svc.Register(context.Background(), tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("register(%q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_CreatesProfileOnFirstLogin(t *testing.T) {
	svc, repo, _, _ := authFixture()
	user := registerUser(t, svc, "ana@molino.co", "secret123")

	result, err := svc.Login(context.Background(), "ana@molino.co", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Token == "" {
		t.Error("expected a session token")
	}
	profile := repo.profiles[user.ID]
	if profile == nil {
		t.Fatal("first login must create the profile")
	}
	if profile.DisplayName != "ana" {
		t.Errorf("expected display name %q, got %q", "ana", profile.DisplayName)
	}
	if profile.AvatarURL != domain.AvatarForEmail("ana@molino.co") {
		t.Error("default avatar must be deterministic for the email")
	}
}

func TestAuthService_Login_KeepsExistingProfile(t *testing.T) {
	svc, repo, _, _ := authFixture()
	user := registerUser(t, svc, "ana@molino.co", "secret123")

	if _, err := svc.Login(context.Background(), "ana@molino.co", "secret123"); err != nil {
		t.Fatalf("first login: %v", err)
	}
	repo.profiles[user.ID].DisplayName = "Ana María"

	result, err := svc.Login(context.Background(), "ana@molino.co", "secret123")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if result.Profile.DisplayName != "Ana María" {
		t.Error("second login must not overwrite the profile")
	}
}

func TestAuthService_Login_TokenCarriesSessionClaims(t *testing.T) {
	svc, _, _, _ := authFixture()
	user := registerUser(t, svc, "ana@molino.co", "secret123")

	result, err := svc.Login(context.Background(), "ana@molino.co", "secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := jwt.Parse(result.Token, func(_ *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token must verify with the signing secret: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID {
		t.Errorf("expected sub %q, got %v", user.ID, claims["sub"])
	}
	if claims["jti"] == "" || claims["jti"] == nil {
		t.Error("token must carry a jti for revocation")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := authFixture()
	registerUser(t, svc, "ana@molino.co", "secret123")

	_, err := svc.Login(context.Background(), "ana@molino.co", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	svc, _, _, _ := authFixture()

	_, err := svc.Login(context.Background(), "nobody@molino.co", "secret123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown account must look like bad credentials, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Logout / password reset tests
// ---------------------------------------------------------------------------

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, sessions, _ := authFixture()

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sessions.revoked["jti-1"] {
		t.Error("token id must be revoked")
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	svc, _, sessions, _ := authFixture()

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions.revoked["jti-1"] {
		t.Error("an already-expired token needs no revocation entry")
	}
}

func TestAuthService_RequestPasswordReset_SendsToken(t *testing.T) {
	svc, _, sessions, mailer := authFixture()
	user := registerUser(t, svc, "ana@molino.co", "secret123")

	if err := svc.RequestPasswordReset(context.Background(), "ana@molino.co"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mailer.sentTo) != 1 || mailer.sentTo[0] != "ana@molino.co" {
		t.Fatalf("expected one mail to the account, got %v", mailer.sentTo)
	}
	if sessions.resetTokens[mailer.lastToken] != user.ID {
		t.Error("mailed token must resolve to the user")
	}
}

func TestAuthService_RequestPasswordReset_UnknownAccountSilent(t *testing.T) {
	svc, _, _, mailer := authFixture()

	if err := svc.RequestPasswordReset(context.Background(), "nobody@molino.co"); err != nil {
		t.Fatalf("unknown account must not surface an error, got %v", err)
	}
	if len(mailer.sentTo) != 0 {
		t.Error("no mail must be sent for unknown accounts")
	}
}

func TestAuthService_ResetPassword_CompletesFlow(t *testing.T) {
	svc, _, sessions, mailer := authFixture()
	registerUser(t, svc, "ana@molino.co", "secret123")

	if err := svc.RequestPasswordReset(context.Background(), "ana@molino.co"); err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), mailer.lastToken, "newsecret"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	if _, err := svc.Login(context.Background(), "ana@molino.co", "newsecret"); err != nil {
		t.Errorf("login with the new password must succeed, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "ana@molino.co", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("old password must stop working, got %v", err)
	}
	if len(sessions.resetTokens) != 0 {
		t.Error("reset token must be consumed")
	}
}

func TestAuthService_ResetPassword_UnknownToken(t *testing.T) {
	svc, _, _, _ := authFixture()

	err := svc.ResetPassword(context.Background(), "bogus", "newsecret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ResetPassword_TokenIsSingleUse(t *testing.T) {
	svc, _, _, mailer := authFixture()
	registerUser(t, svc, "ana@molino.co", "secret123")

	if err := svc.RequestPasswordReset(context.Background(), "ana@molino.co"); err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), mailer.lastToken, "newsecret"); err != nil {
		t.Fatalf("first reset: %v", err)
	}

	err := svc.ResetPassword(context.Background(), mailer.lastToken, "another")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("token replay must fail, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Avatar tests
// ---------------------------------------------------------------------------

func TestAuthService_ChangeAvatar(t *testing.T) {
	svc, repo, _, _ := authFixture()
	user := registerUser(t, svc, "ana@molino.co", "secret123")
	if _, err := svc.Login(context.Background(), "ana@molino.co", "secret123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	want := domain.Avatars[3]
	profile, err := svc.ChangeAvatar(context.Background(), user.ID, want)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.AvatarURL != want {
		t.Errorf("expected avatar %q, got %q", want, profile.AvatarURL)
	}

	stored, err := repo.FindProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("stored profile: %v", err)
	}
	if stored.AvatarURL != want {
		t.Errorf("selection must be persisted, stored %q", stored.AvatarURL)
	}
}

func TestAuthService_ChangeAvatar_RejectsUnknownURL(t *testing.T) {
	svc, _, _, _ := authFixture()

	_, err := svc.ChangeAvatar(context.Background(), "user_1", "https://example.com/evil.svg")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAvatarForEmail_Deterministic(t *testing.T) {
	a := domain.AvatarForEmail("ana@molino.co")
	b := domain.AvatarForEmail("ana@molino.co")
	if a != b {
		t.Error("avatar assignment must be deterministic")
	}

	found := false
	for _, url := range domain.Avatars {
		if url == a {
			found = true
		}
	}
	if !found {
		t.Error("assigned avatar must come from the catalog")
	}
}

var _ ports.SessionStore = (*stubSessionStore)(nil)
