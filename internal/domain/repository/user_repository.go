package repository

import (
	"context"
	"errors"

	"github.com/coinfollow/coinfollow-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned by lookups when no user matches.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned by Create when a unique constraint on
	// username or email is violated. The constraint is the authoritative
	// uniqueness guard; application-level pre-checks are a fast path only.
	ErrDuplicate = errors.New("duplicate username or email")
)

// UserRepository defines the interface for user persistence.
// AddFollowedCoin and RemoveFollowedCoin must be implemented as a single
// atomic update; the returned bool reports whether the stored set changed.
// A false result does not distinguish a missing user from a no-op mutation.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	AddFollowedCoin(ctx context.Context, id, coin string) (bool, error)
	RemoveFollowedCoin(ctx context.Context, id, coin string) (bool, error)
}
