package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/resume-interviewer/internal/config"
	"github.com/jonathan/resume-interviewer/internal/db"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// UserStore is the subset of the db layer the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
}

// UserService provides business logic for user authentication operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

func toAPIUser(u *db.User) *types.User {
	if u == nil {
		return nil
	}
	return &types.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toAPIUser(user), nil
}

// Login authenticates a user and returns user data. A missing account and a
// wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, &ErrInvalidCredentials{}
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIUser(user), nil
}
