package domain

import (
	"errors"
	"time"
)

var ErrUnauthenticated = errors.New("not signed in")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("Email taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")

// User models an account in the system. HashedPassword is empty for
// OAuth-only accounts, which therefore cannot sign in via the credentials
// path. FavoriteIDs is an ordered list of movie identifiers; repeated adds
// produce repeated entries (the store does not deduplicate).
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	Image           string    `json:"image,omitempty"`
	HashedPassword  string    `json:"-"`
	FavoriteIDs     []string  `json:"favoriteIds"`
	EmailVerifiedAt time.Time `json:"emailVerified,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CanAuthenticate reports whether the credentials login path is available
// for this account.
func (u *User) CanAuthenticate() bool {
	return u.HashedPassword != ""
}
