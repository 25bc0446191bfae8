package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionRevoked = errors.New("session revoked")

// User models an authenticated actor. There are no roles: any authenticated
// user may perform any record operation.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the per-user display data shown in the settings screen.
// It is created lazily on the first successful login.
type Profile struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Avatars is the catalog of selectable profile pictures (DiceBear API).
var Avatars = []string{
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Aneka",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Luna",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Max",
	"https://api.dicebear.com/7.x/avataaars/svg?seed=Bella",
	"https://api.dicebear.com/7.x/bottts/svg?seed=Fluffy",
	"https://api.dicebear.com/7.x/bottts/svg?seed=Cuddles",
	"https://api.dicebear.com/7.x/bottts/svg?seed=Snickers",
	"https://api.dicebear.com/7.x/adventurer/svg?seed=Princess",
	"https://api.dicebear.com/7.x/adventurer/svg?seed=Cooper",
	"https://api.dicebear.com/7.x/adventurer/svg?seed=Chloe",
	"https://api.dicebear.com/7.x/big-smile/svg?seed=Happy",
	"https://api.dicebear.com/7.x/big-smile/svg?seed=Sunshine",
	"https://api.dicebear.com/7.x/lorelei/svg?seed=Whiskers",
	"https://api.dicebear.com/7.x/lorelei/svg?seed=Mittens",
}

// AvatarForEmail deterministically maps an email to a catalog avatar, used as
// the default when a profile is created lazily.
func AvatarForEmail(email string) string {
	var hash uint32
	for i := 0; i < len(email); i++ {
		hash = hash<<5 - hash + uint32(email[i])
	}
	return Avatars[int(hash%uint32(len(Avatars)))]
}
