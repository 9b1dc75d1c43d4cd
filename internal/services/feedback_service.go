package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/policy"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

var (
	// ErrFeedbackNotFound is returned when a feedback id resolves to nothing
	ErrFeedbackNotFound = fmt.Errorf("feedback %w", apperrors.ErrNotFound)

	// ErrInvalidRating is returned for ratings outside [1,5]
	ErrInvalidRating = fmt.Errorf("rating must be between 1 and 5: %w", apperrors.ErrInvalidInput)
)

// FeedbackService manages session feedback. Any authenticated user may
// submit feedback; only the submitter may change or remove it. The session
// id is stored as given and never checked against the session store.
type FeedbackService struct {
	feedbacks repository.FeedbackStore
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbacks repository.FeedbackStore) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks}
}

// Create records feedback from the caller
func (s *FeedbackService) Create(ctx context.Context, identity models.Identity, req *models.CreateFeedbackRequest) (*models.Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		metrics.FeedbackOperations.WithLabelValues("create", "invalid_rating").Inc()
		return nil, ErrInvalidRating
	}

	feedback := &models.Feedback{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,
		UserID:    identity.ID,
		UserRole:  identity.Role,
		Rating:    req.Rating,
		Comments:  req.Comments,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.feedbacks.Create(ctx, feedback); err != nil {
		metrics.FeedbackOperations.WithLabelValues("create", "store_failed").Inc()
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	metrics.FeedbackOperations.WithLabelValues("create", "success").Inc()
	logger.Info("Feedback submitted",
		zap.String("feedback_id", feedback.ID),
		zap.String("session_id", feedback.SessionID),
		zap.Int("rating", feedback.Rating))

	return feedback, nil
}

// ListBySession returns all feedback for a session id. There is no
// participation check here; any authenticated user may read it.
func (s *FeedbackService) ListBySession(ctx context.Context, sessionID string) ([]*models.Feedback, error) {
	return s.feedbacks.ListBySession(ctx, sessionID)
}

// ListMine returns the caller's own feedback entries
func (s *FeedbackService) ListMine(ctx context.Context, identity models.Identity) ([]*models.Feedback, error) {
	return s.feedbacks.ListByUser(ctx, identity.ID)
}

// Update applies a partial update; only the submitter may do so. A supplied
// rating is revalidated against [1,5].
func (s *FeedbackService) Update(ctx context.Context, identity models.Identity, id string, req *models.UpdateFeedbackRequest) (*models.Feedback, error) {
	feedback, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		metrics.FeedbackOperations.WithLabelValues("update", "not_found").Inc()
		return nil, ErrFeedbackNotFound
	}

	if err := policy.Check(policy.FeedbackUpdate, identity, feedback); err != nil {
		metrics.FeedbackOperations.WithLabelValues("update", "forbidden").Inc()
		logger.Warn("Feedback update denied",
			zap.String("feedback_id", id),
			zap.String("user_id", identity.ID))
		return nil, err
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		metrics.FeedbackOperations.WithLabelValues("update", "invalid_rating").Inc()
		return nil, ErrInvalidRating
	}

	now := time.Now().UTC()
	updated := *feedback
	if req.Rating != nil {
		updated.Rating = *req.Rating
	}
	if req.Comments != nil {
		updated.Comments = *req.Comments
	}
	updated.UpdatedAt = &now

	if err := s.feedbacks.Update(ctx, &updated); err != nil {
		metrics.FeedbackOperations.WithLabelValues("update", "store_failed").Inc()
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}

	metrics.FeedbackOperations.WithLabelValues("update", "success").Inc()
	return &updated, nil
}

// Delete removes feedback; only the submitter may do so
func (s *FeedbackService) Delete(ctx context.Context, identity models.Identity, id string) error {
	feedback, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		metrics.FeedbackOperations.WithLabelValues("delete", "not_found").Inc()
		return ErrFeedbackNotFound
	}

	if err := policy.Check(policy.FeedbackDelete, identity, feedback); err != nil {
		metrics.FeedbackOperations.WithLabelValues("delete", "forbidden").Inc()
		logger.Warn("Feedback delete denied",
			zap.String("feedback_id", id),
			zap.String("user_id", identity.ID))
		return err
	}

	if err := s.feedbacks.Delete(ctx, id); err != nil {
		metrics.FeedbackOperations.WithLabelValues("delete", "store_failed").Inc()
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	metrics.FeedbackOperations.WithLabelValues("delete", "success").Inc()
	logger.Info("Feedback deleted",
		zap.String("feedback_id", id),
		zap.String("user_id", identity.ID))
	return nil
}
