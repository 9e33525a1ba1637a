package service

import (
	"context"
	"errors"

	"github.com/Varun5711/todolist/internal/apperror"
	"github.com/Varun5711/todolist/internal/auth"
	"github.com/Varun5711/todolist/internal/logger"
	"github.com/Varun5711/todolist/internal/models"
	"github.com/Varun5711/todolist/internal/storage"
)

const (
	MsgEmailTaken      = "Other user already use this email"
	MsgUserNotFound    = "User not found"
	MsgInvalidPassword = "Invalid password"
)

// AuthService registers accounts and issues session tokens. Inputs are
// expected to have passed the signup/signin validation chains.
type AuthService struct {
	users      storage.UserStore
	hasher     *auth.PasswordHasher
	jwtManager *auth.JWTManager
	log        *logger.Logger
}

func NewAuthService(users storage.UserStore, hasher *auth.PasswordHasher, jwtManager *auth.JWTManager, log *logger.Logger) *AuthService {
	return &AuthService{
		users:      users,
		hasher:     hasher,
		jwtManager: jwtManager,
		log:        log,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	existingUser, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", apperror.NewInternal("failed to check existing user", err)
	}
	if existingUser != nil {
		return "", apperror.NewConflict(MsgEmailTaken, nil)
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return "", apperror.NewInternal("failed to hash password", err)
	}

	user, err := s.users.CreateUser(ctx, &models.CreateUserRequest{
		Name:         username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return "", apperror.NewConflict(MsgEmailTaken, err)
	}
	if err != nil {
		return "", apperror.NewInternal("failed to create user", err)
	}

	token, _, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", apperror.NewInternal("failed to generate token", err)
	}

	s.log.Info("User registered: id=%d", user.ID)
	return token, nil
}

func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", apperror.NewInternal("failed to get user", err)
	}
	if user == nil {
		return "", apperror.NewNotFound(MsgUserNotFound)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.log.Debug("Sign-in rejected: id=%d", user.ID)
			return "", apperror.NewUnauthorized(MsgInvalidPassword, nil)
		}
		return "", apperror.NewInternal("failed to compare password", err)
	}

	token, _, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", apperror.NewInternal("failed to generate token", err)
	}

	return token, nil
}
