package repository

import (
	"context"
	"fmt"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
)

// ErrDuplicateEmail is returned by UserStore.Create when the email is taken
var ErrDuplicateEmail = fmt.Errorf("email already registered: %w", apperrors.ErrConflict)

// UserStore is the credential store: the keyed collection of user records
// used for authentication lookups. Implementations must make Create's
// uniqueness check and insert atomic.
type UserStore interface {
	// Create inserts a new user; fails with ErrDuplicateEmail when another
	// record already holds the same email (exact, case-sensitive match)
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user with the given email or apperrors.ErrNotFound
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id or apperrors.ErrNotFound
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// SessionStore holds mentoring session records
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// ListByMentor returns sessions where the given user is the mentor,
	// in insertion order
	ListByMentor(ctx context.Context, mentorID string) ([]*models.Session, error)

	// ListByMentee returns sessions where the given user is the mentee,
	// in insertion order
	ListByMentee(ctx context.Context, menteeID string) ([]*models.Session, error)

	// Update replaces the stored record; apperrors.ErrNotFound when absent
	Update(ctx context.Context, session *models.Session) error

	// Delete removes the record; apperrors.ErrNotFound when absent
	Delete(ctx context.Context, id string) error
}

// FeedbackStore holds feedback records
type FeedbackStore interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByID(ctx context.Context, id string) (*models.Feedback, error)
	ListBySession(ctx context.Context, sessionID string) ([]*models.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Feedback, error)
	Update(ctx context.Context, feedback *models.Feedback) error
	Delete(ctx context.Context, id string) error
}
