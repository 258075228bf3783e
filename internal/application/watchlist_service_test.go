package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/coinfollow/coinfollow-api/internal/domain/entity"
	repo "github.com/coinfollow/coinfollow-api/internal/domain/repository"
)

const testUserID = "7f0d8a1e-9c52-4f7e-8a41-2b9f4f1d6c3a"

func newWatchlistService(r repo.UserRepository) *WatchlistService {
	// no cache in these tests; the cache path is best-effort and optional
	return NewWatchlistService(r, nil, nil)
}

func TestFollow(t *testing.T) {
	ctx := context.Background()

	t.Run("first follow succeeds", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("AddFollowedCoin", mock.Anything, testUserID, "BTC").Return(true, nil)

		require.NoError(t, svc.Follow(ctx, testUserID, "BTC"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("repeat follow is not modified", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("AddFollowedCoin", mock.Anything, testUserID, "BTC").Return(false, nil)

		require.ErrorIs(t, svc.Follow(ctx, testUserID, "BTC"), ErrNotModified)
	})

	t.Run("missing user is also not modified", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("AddFollowedCoin", mock.Anything, "no-such-id", "BTC").Return(false, nil)

		require.ErrorIs(t, svc.Follow(ctx, "no-such-id", "BTC"), ErrNotModified)
	})

	t.Run("empty arguments", func(t *testing.T) {
		svc := newWatchlistService(new(MockUserRepository))

		require.ErrorIs(t, svc.Follow(ctx, "", "BTC"), ErrInvalidArgument)
		require.ErrorIs(t, svc.Follow(ctx, testUserID, ""), ErrInvalidArgument)
	})

	t.Run("storage failure is masked", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("AddFollowedCoin", mock.Anything, testUserID, "BTC").
			Return(false, errors.New("connection reset"))

		require.ErrorIs(t, svc.Follow(ctx, testUserID, "BTC"), ErrStorage)
	})
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("unfollow removes a followed coin", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("RemoveFollowedCoin", mock.Anything, testUserID, "BTC").Return(true, nil)

		require.NoError(t, svc.Unfollow(ctx, testUserID, "BTC"))
	})

	t.Run("unfollow of an unfollowed coin is not modified", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("RemoveFollowedCoin", mock.Anything, testUserID, "DOGE").Return(false, nil)

		require.ErrorIs(t, svc.Unfollow(ctx, testUserID, "DOGE"), ErrNotModified)
	})

	t.Run("empty arguments", func(t *testing.T) {
		svc := newWatchlistService(new(MockUserRepository))

		require.ErrorIs(t, svc.Unfollow(ctx, "", "BTC"), ErrInvalidArgument)
		require.ErrorIs(t, svc.Unfollow(ctx, testUserID, ""), ErrInvalidArgument)
	})
}

func TestCheckFollowStatus(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: testUserID, Username: "alice", FollowedCoins: []string{"BTC", "ETH"}}

	t.Run("member", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, testUserID).Return(user, nil)

		follows, err := svc.CheckFollowStatus(ctx, testUserID, "BTC")
		require.NoError(t, err)
		require.True(t, follows)
	})

	t.Run("not a member", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, testUserID).Return(user, nil)

		follows, err := svc.CheckFollowStatus(ctx, testUserID, "DOGE")
		require.NoError(t, err)
		require.False(t, follows)
	})

	t.Run("missing user is not found, unlike the mutations", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "no-such-id").Return(nil, repo.ErrNotFound)

		_, err := svc.CheckFollowStatus(ctx, "no-such-id", "BTC")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestListFollowed(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh user has an empty list", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, testUserID).
			Return(&entity.User{ID: testUserID, FollowedCoins: nil}, nil)

		coins, err := svc.ListFollowed(ctx, testUserID)
		require.NoError(t, err)
		require.NotNil(t, coins)
		require.Empty(t, coins)
	})

	t.Run("returns the current set", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, testUserID).
			Return(&entity.User{ID: testUserID, FollowedCoins: []string{"BTC"}}, nil)

		coins, err := svc.ListFollowed(ctx, testUserID)
		require.NoError(t, err)
		require.Equal(t, []string{"BTC"}, coins)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "no-such-id").Return(nil, repo.ErrNotFound)

		_, err := svc.ListFollowed(ctx, "no-such-id")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("empty user id", func(t *testing.T) {
		svc := newWatchlistService(new(MockUserRepository))

		_, err := svc.ListFollowed(ctx, "")
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("storage failure is masked", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newWatchlistService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, testUserID).Return(nil, errors.New("connection reset"))

		_, err := svc.ListFollowed(ctx, testUserID)
		require.ErrorIs(t, err, ErrStorage)
	})
}
