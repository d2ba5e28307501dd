// Package services contains the server-side business logic. This file
// implements AuthService, the composition point for registration, login,
// and request authentication.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/lunchboxd/lunchboxd-server/internal/common"
	"github.com/lunchboxd/lunchboxd-server/internal/server/auth"
	"github.com/lunchboxd/lunchboxd-server/internal/server/config"
	"github.com/lunchboxd/lunchboxd-server/internal/server/models"
	"github.com/lunchboxd/lunchboxd-server/internal/server/repositories/users"
)

// AuthService wraps the credential hasher and the token service into the
// register/login/authenticate flows the route layer calls.
type AuthService struct {
	repo                  users.Repository
	verifier              *auth.Verifier
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewAuthService(repo users.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:                  repo,
		verifier:              auth.NewVerifier([]byte(cfg.SecretKey)),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a user account. The candidate's Password field carries
// the plaintext on entry and is replaced by the bcrypt digest before the
// insert. The username/email existence check runs first and a match fails
// with ErrorConflict without writing anything; check and insert are
// deliberately sequential, not atomic.
func (s *AuthService) Register(ctx context.Context, candidate *models.User) (*models.PublicUser, string, error) {
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, candidate.Username, candidate.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", common.ErrorConflict
	}

	digest, err := auth.HashPassword(candidate.Password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}
	candidate.Password = digest

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(created.ExternalID(), s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return created.Public(), token, nil
}

// Login looks the user up by username only and verifies the password.
// An unknown username and a wrong password collapse into the same
// ErrorUnauthorized so existence is never revealed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.PublicUser, string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ExternalID(), s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user.Public(), token, nil
}

// Authenticate resolves a bearer token to its subject. Every verifier
// failure kind maps to ErrorUnauthenticated; the route layer must not
// tell the client which check failed.
func (s *AuthService) Authenticate(token string) (string, error) {
	userID, err := s.verifier.UserIDFromToken(token)
	if err != nil {
		return "", common.ErrorUnauthenticated
	}
	return userID, nil
}

// Authorize enforces the entire authorization model: an action naming a
// target user must be performed by that same user.
func (s *AuthService) Authorize(subjectID, targetUserID string) error {
	if subjectID != targetUserID {
		return common.ErrorForbidden
	}
	return nil
}
