package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in PasswordHash and must never leave
// the application layer; callers get a view with the hash stripped.
type User struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	IsVerified    bool
	FollowedCoins []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FollowsCoin reports whether coin is in the user's watchlist.
func (u *User) FollowsCoin(coin string) bool {
	for _, c := range u.FollowedCoins {
		if c == coin {
			return true
		}
	}
	return false
}
