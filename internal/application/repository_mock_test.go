package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/coinfollow/coinfollow-api/internal/domain/entity"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AddFollowedCoin(ctx context.Context, id, coin string) (bool, error) {
	args := m.Called(ctx, id, coin)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) RemoveFollowedCoin(ctx context.Context, id, coin string) (bool, error) {
	args := m.Called(ctx, id, coin)
	return args.Bool(0), args.Error(1)
}
