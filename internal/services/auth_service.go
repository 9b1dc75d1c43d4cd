package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/password"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists
	ErrEmailTaken = fmt.Errorf("email already registered: %w", apperrors.ErrConflict)

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot distinguish the two (no account enumeration)
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)

	// ErrUserNotFound is returned when a profile lookup misses
	ErrUserNotFound = fmt.Errorf("user %w", apperrors.ErrNotFound)
)

// AuthService handles registration, login and profile lookups
type AuthService struct {
	users  repository.UserStore
	tokens *jwt.TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserStore, tokens *jwt.TokenManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a user account and issues its first access token
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	start := time.Now()

	role := models.Role(req.Role)
	if !role.Valid() {
		// Request binding already enforces this; kept for direct callers
		metrics.Registrations.WithLabelValues("invalid_role").Inc()
		return nil, "", apperrors.InvalidInputError("role", "must be mentor or mentee")
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		metrics.Registrations.WithLabelValues("hash_failed").Inc()
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, "", apperrors.InternalError("failed to hash password")
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			metrics.Registrations.WithLabelValues("duplicate_email").Inc()
			logger.Warn("Registration with existing email", zap.String("email", req.Email))
			return nil, "", ErrEmailTaken
		}
		metrics.Registrations.WithLabelValues("store_failed").Inc()
		return nil, "", fmt.Errorf("failed to store user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		metrics.Registrations.WithLabelValues("token_failed").Inc()
		logger.Error("Failed to issue token", zap.String("user_id", user.ID), zap.Error(err))
		return nil, "", apperrors.InternalError("failed to issue token")
	}

	metrics.Registrations.WithLabelValues("success").Inc()
	logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.Duration("duration", time.Since(start)))

	return user, token, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password take the same path out: same error, same log shape.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	start := time.Now()

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		metrics.Logins.WithLabelValues("rejected").Inc()
		logger.Warn("Login attempt rejected", zap.String("email", req.Email))
		return nil, "", ErrInvalidCredentials
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		metrics.Logins.WithLabelValues("rejected").Inc()
		logger.Warn("Login attempt rejected", zap.String("email", req.Email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		metrics.Logins.WithLabelValues("token_failed").Inc()
		logger.Error("Failed to issue token", zap.String("user_id", user.ID), zap.Error(err))
		return nil, "", apperrors.InternalError("failed to issue token")
	}

	metrics.Logins.WithLabelValues("success").Inc()
	logger.Info("Login successful",
		zap.String("user_id", user.ID),
		zap.Duration("duration", time.Since(start)))

	return user, token, nil
}

// Profile returns the account behind an authenticated identity
func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
