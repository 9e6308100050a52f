package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vidchat/internal/auth"
	apperr "vidchat/internal/errors"
	"vidchat/internal/model"
	"vidchat/internal/repository"
)

// PasswordHasher derives and checks stored password digests.
type PasswordHasher interface {
	NewSalt() (string, error)
	HashHex(password, salt string) (string, error)
	Verify(password, salt, expectedHex string) (bool, error)
}

// AuthService handles registration, login and password changes.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	ChangePassword(ctx context.Context, userID uint, current, next string) error
	CurrentUser(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	hasher   PasswordHasher
	sessions *auth.SessionService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher PasswordHasher, sessions *auth.SessionService) AuthService {
	return &authService{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
	}
}

// Register stores a new user with a salted digest of password.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, apperr.ErrMissingFields
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("check credentials: %w", err)
	}
	if taken {
		return nil, apperr.ErrCredentialsExist
	}

	salt, digest, err := s.digest(password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username: username,
		Email:    email,
		Password: digest,
		Salt:     salt,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent registration can slip past the existence check
		if errors.Is(err, apperr.ErrAlreadyExists) {
			return nil, apperr.ErrCredentialsExist
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the password and issues a session token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, apperr.ErrMissingFields
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", nil, apperr.ErrNoSuchUser
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.checkPassword(user, password); err != nil {
		return "", nil, err
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePassword replaces the stored digest after checking the current password.
func (s *authService) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	if current == "" || next == "" {
		return apperr.ErrMissingFields
	}

	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.checkPassword(user, current); err != nil {
		return err
	}

	salt, digest, err := s.digest(next)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, digest, salt); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrNoSuchUser
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// CurrentUser loads the user a session refers to.
func (s *authService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrNoSuchUser
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *authService) checkPassword(user *model.User, password string) error {
	ok, err := s.hasher.Verify(password, user.Salt, user.Password)
	if err != nil {
		return fmt.Errorf("verify password for user %d: %w", user.ID, err)
	}
	if !ok {
		return apperr.ErrBadCredentials
	}
	return nil
}

func (s *authService) digest(password string) (salt, digest string, err error) {
	salt, err = s.hasher.NewSalt()
	if err != nil {
		return "", "", err
	}
	digest, err = s.hasher.HashHex(password, salt)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}
	return salt, digest, nil
}
