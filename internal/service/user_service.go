package service

import (
	"context"
	"errors"

	"todoapi/internal/domain"
	"todoapi/internal/repository"
)

// UserStore is the slice of persistence the user service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register hashes the password and persists a new user. The plaintext is
// never stored or returned. Duplicate usernames surface as
// domain.ErrUsernameTaken.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	u := &domain.User{
		Username:     username,
		PasswordHash: HashPassword(password),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate resolves the claimed username and verifies the password
// against the stored digest. Unknown user and wrong password both return
// domain.ErrInvalidCredentials so callers cannot probe for usernames.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if !VerifyPassword(password, u.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}
	return u.Username, nil
}
