package application

import "github.com/coinfollow/coinfollow-api/internal/domain/entity"

// UserView is the public projection of a user record. It never carries the
// password hash.
type UserView struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	IsVerified    bool     `json:"is_verified"`
	FollowedCoins []string `json:"followed_coins"`
}

// NewUserView builds the public view of u. FollowedCoins is always non-nil
// so it serializes as [] rather than null.
func NewUserView(u *entity.User) *UserView {
	coins := make([]string, 0, len(u.FollowedCoins))
	coins = append(coins, u.FollowedCoins...)
	return &UserView{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		IsVerified:    u.IsVerified,
		FollowedCoins: coins,
	}
}
