package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coinfollow/coinfollow-api/internal/domain/entity"
	"github.com/coinfollow/coinfollow-api/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, is_verified, followed_coins)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.PasswordHash, u.IsVerified, u.FollowedCoins)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, is_verified, followed_coins, created_at, updated_at
		FROM users
		WHERE `+column+` = $1
	`, value)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.IsVerified, &u.FollowedCoins, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	row := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)
	`, username, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// AddFollowedCoin appends coin to followed_coins in one guarded statement so
// two concurrent calls cannot both observe the coin as absent and insert it
// twice. Zero rows affected means the user is missing or already follows the
// coin; the two cases are indistinguishable here.
func (r *UserRepository) AddFollowedCoin(ctx context.Context, id, coin string) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET followed_coins = array_append(followed_coins, $2), updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(followed_coins))
	`, id, coin)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *UserRepository) RemoveFollowedCoin(ctx context.Context, id, coin string) (bool, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET followed_coins = array_remove(followed_coins, $2), updated_at = now()
		WHERE id = $1 AND $2 = ANY(followed_coins)
	`, id, coin)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
