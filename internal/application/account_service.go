package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/coinfollow/coinfollow-api/internal/domain/entity"
	repo "github.com/coinfollow/coinfollow-api/internal/domain/repository"
	"github.com/coinfollow/coinfollow-api/pkg/helpers"
)

// AccountService owns user identity records: registration with uniqueness
// enforcement and one-way password verification.
type AccountService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewAccountService(r repo.UserRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{Repo: r, Logger: logger}
}

// Register creates a new user. Username and email must be unique; the unique
// indexes are the authoritative guard, the pre-check below only produces a
// friendly error before the insert is attempted.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*UserView, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidArgument
	}

	exists, err := s.Repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		s.logStorage("register pre-check failed", err, logrus.Fields{"email": email})
		return nil, ErrStorage
	}
	if exists {
		return nil, ErrDuplicateIdentity
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.logStorage("password hash failed", err, nil)
		return nil, ErrStorage
	}

	u := &entity.User{
		Username:      username,
		Email:         email,
		PasswordHash:  hash,
		IsVerified:    false,
		FollowedCoins: []string{},
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// lost the insert race; same outcome as the pre-check
			return nil, ErrDuplicateIdentity
		}
		s.logStorage("create user failed", err, logrus.Fields{"email": email})
		return nil, ErrStorage
	}

	return NewUserView(u), nil
}

// Authenticate verifies email/password and returns the public view. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*UserView, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidArgument
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logStorage("lookup by email failed", err, logrus.Fields{"email": email})
		return nil, ErrStorage
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return NewUserView(u), nil
}

func (s *AccountService) logStorage(msg string, err error, fields logrus.Fields) {
	if s.Logger == nil {
		return
	}
	s.Logger.WithError(err).WithFields(fields).Error(msg)
}
