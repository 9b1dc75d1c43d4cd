package services

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// AuthServiceInterface defines the interface for authentication operations
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
}

// SessionServiceInterface defines the interface for session operations
type SessionServiceInterface interface {
	Create(ctx context.Context, identity models.Identity, req *models.CreateSessionRequest) (*models.Session, error)
	List(ctx context.Context, identity models.Identity) ([]*models.Session, error)
	Get(ctx context.Context, identity models.Identity, id string) (*models.Session, error)
	Update(ctx context.Context, identity models.Identity, id string, req *models.UpdateSessionRequest) (*models.Session, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

// FeedbackServiceInterface defines the interface for feedback operations
type FeedbackServiceInterface interface {
	Create(ctx context.Context, identity models.Identity, req *models.CreateFeedbackRequest) (*models.Feedback, error)
	ListBySession(ctx context.Context, sessionID string) ([]*models.Feedback, error)
	ListMine(ctx context.Context, identity models.Identity) ([]*models.Feedback, error)
	Update(ctx context.Context, identity models.Identity, id string, req *models.UpdateFeedbackRequest) (*models.Feedback, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

// Ensure services implement their interfaces
var _ AuthServiceInterface = (*AuthService)(nil)
var _ SessionServiceInterface = (*SessionService)(nil)
var _ FeedbackServiceInterface = (*FeedbackService)(nil)
