package service

import (
	"context"

	"github.com/tuitionhub/tuition-backend/internal/model"
)

// UserService handles user registration and lookup.
type UserService struct {
	users  UserStore
	hasher PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, hasher PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// FindByUsername retrieves a user by case-insensitive username.
// Returns (nil, nil) when no user matches.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.users.FindByUsername(ctx, username)
}

// Register hashes the plaintext password and persists the user, returning
// the stored record. The Password field is replaced with the hash in place;
// the plaintext is never persisted.
func (s *UserService) Register(ctx context.Context, u *model.User) (*model.User, error) {
	hash, err := s.hasher.Hash(u.Password)
	if err != nil {
		return nil, err
	}
	u.Password = hash

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
