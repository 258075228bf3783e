package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	repo "github.com/coinfollow/coinfollow-api/internal/domain/repository"
)

// WatchlistService owns the followed-coins set per user. Mutations are
// idempotent: following a coin twice changes nothing the second time and is
// reported as ErrNotModified.
//
// Reads are served from the cache when warm; cache failures are logged and
// never fail the request.
type WatchlistService struct {
	Repo   repo.UserRepository
	Cache  WatchlistCache
	Logger *logrus.Logger
}

func NewWatchlistService(r repo.UserRepository, cache WatchlistCache, logger *logrus.Logger) *WatchlistService {
	return &WatchlistService{Repo: r, Cache: cache, Logger: logger}
}

// Follow adds coin to the user's watchlist. A zero-change update (missing
// user, or coin already followed) returns ErrNotModified.
func (s *WatchlistService) Follow(ctx context.Context, userID, coin string) error {
	if userID == "" || coin == "" {
		return ErrInvalidArgument
	}
	changed, err := s.Repo.AddFollowedCoin(ctx, userID, coin)
	if err != nil {
		s.logStorage("add followed coin failed", err, userID, coin)
		return ErrStorage
	}
	if !changed {
		return ErrNotModified
	}
	s.invalidate(ctx, userID)
	return nil
}

// Unfollow mirrors Follow: removing an absent coin, or targeting a missing
// user, returns ErrNotModified.
func (s *WatchlistService) Unfollow(ctx context.Context, userID, coin string) error {
	if userID == "" || coin == "" {
		return ErrInvalidArgument
	}
	changed, err := s.Repo.RemoveFollowedCoin(ctx, userID, coin)
	if err != nil {
		s.logStorage("remove followed coin failed", err, userID, coin)
		return ErrStorage
	}
	if !changed {
		return ErrNotModified
	}
	s.invalidate(ctx, userID)
	return nil
}

// CheckFollowStatus reports whether the user follows coin. Unlike the
// mutations, this path does distinguish a missing user (ErrUserNotFound)
// from false membership.
func (s *WatchlistService) CheckFollowStatus(ctx context.Context, userID, coin string) (bool, error) {
	if userID == "" || coin == "" {
		return false, ErrInvalidArgument
	}
	coins, err := s.followedCoins(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, c := range coins {
		if c == coin {
			return true, nil
		}
	}
	return false, nil
}

// ListFollowed returns the user's current watchlist, which may be empty.
func (s *WatchlistService) ListFollowed(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, ErrInvalidArgument
	}
	return s.followedCoins(ctx, userID)
}

func (s *WatchlistService) followedCoins(ctx context.Context, userID string) ([]string, error) {
	if s.Cache != nil {
		cached, hit, err := s.Cache.GetCoins(ctx, userID)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("watchlist cache read failed")
		}
		if hit {
			return cached, nil
		}
	}

	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logStorage("lookup by id failed", err, userID, "")
		return nil, ErrStorage
	}

	coins := u.FollowedCoins
	if coins == nil {
		coins = []string{}
	}
	if s.Cache != nil {
		if err := s.Cache.SetCoins(ctx, userID, coins); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("watchlist cache write failed")
		}
	}
	return coins, nil
}

func (s *WatchlistService) invalidate(ctx context.Context, userID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, userID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("watchlist cache invalidate failed")
	}
}

func (s *WatchlistService) logStorage(msg string, err error, userID, coin string) {
	if s.Logger == nil {
		return
	}
	fields := logrus.Fields{"user_id": userID}
	if coin != "" {
		fields["coin"] = coin
	}
	s.Logger.WithError(err).WithFields(fields).Error(msg)
}
