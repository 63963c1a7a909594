package auth

import (
	"context"
	"errors"
	"fmt"
)

type (
	// Service orchestrates registration, login and user resolution over the
	// credential store, the password hasher and the token manager.
	Service interface {
		Register(ctx context.Context, username, password string) (*User, error)
		Login(ctx context.Context, username, password string) (string, error)
		FindByUsername(ctx context.Context, username string) (*User, error)
	}

	service struct {
		repo   repoer
		hasher Hasher
		tokens *TokenManager
	}
)

func NewService(repo repoer, hasher Hasher, tokens *TokenManager) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register hashes the password and persists the user. A taken username
// surfaces as ErrDuplicateUsername; no partial state is left behind.
func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	return s.repo.Create(ctx, username, hash)
}

// Login validates credentials and mints an access token. An unknown
// username, a wrong password and a deactivated account all return
// ErrInvalidCredentials so the caller cannot tell which check failed.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}

func (s *service) FindByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}
