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

// ErrSessionNotFound is returned when a session id resolves to nothing
var ErrSessionNotFound = fmt.Errorf("session %w", apperrors.ErrNotFound)

// SessionService manages mentoring sessions. Every mutation goes through the
// policy table before it touches the store.
type SessionService struct {
	sessions repository.SessionStore
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions repository.SessionStore) *SessionService {
	return &SessionService{sessions: sessions}
}

// Create schedules a session. The caller becomes the session's mentor, so
// only mentor accounts may create one; the mentee id is recorded as given.
func (s *SessionService) Create(ctx context.Context, identity models.Identity, req *models.CreateSessionRequest) (*models.Session, error) {
	if err := policy.Check(policy.SessionCreate, identity, nil); err != nil {
		metrics.SessionOperations.WithLabelValues("create", "forbidden").Inc()
		logger.Warn("Session creation denied",
			zap.String("user_id", identity.ID),
			zap.String("role", string(identity.Role)))
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.Session{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		MentorID:      identity.ID,
		MenteeID:      req.MenteeID,
		ScheduledDate: req.ScheduledDate,
		Status:        models.SessionScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		metrics.SessionOperations.WithLabelValues("create", "store_failed").Inc()
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	metrics.SessionOperations.WithLabelValues("create", "success").Inc()
	logger.Info("Session created",
		zap.String("session_id", session.ID),
		zap.String("mentor_id", session.MentorID),
		zap.String("mentee_id", session.MenteeID))

	return session, nil
}

// List returns the caller's sessions, filtered by role: mentors see sessions
// they mentor, mentees see sessions they attend. The filter is role-based,
// not participation-based, so a mentor never sees sessions where they happen
// to be recorded as a mentee.
func (s *SessionService) List(ctx context.Context, identity models.Identity) ([]*models.Session, error) {
	if identity.Role == models.RoleMentor {
		return s.sessions.ListByMentor(ctx, identity.ID)
	}
	return s.sessions.ListByMentee(ctx, identity.ID)
}

// Get returns a single session if the caller participates in it
func (s *SessionService) Get(ctx context.Context, identity models.Identity, id string) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if err := policy.Check(policy.SessionView, identity, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update applies a partial update; only the session's mentor may do so.
// Empty request fields keep the stored values.
func (s *SessionService) Update(ctx context.Context, identity models.Identity, id string, req *models.UpdateSessionRequest) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		metrics.SessionOperations.WithLabelValues("update", "not_found").Inc()
		return nil, ErrSessionNotFound
	}

	if err := policy.Check(policy.SessionUpdate, identity, session); err != nil {
		metrics.SessionOperations.WithLabelValues("update", "forbidden").Inc()
		logger.Warn("Session update denied",
			zap.String("session_id", id),
			zap.String("user_id", identity.ID))
		return nil, err
	}

	updated := *session
	if req.Title != "" {
		updated.Title = req.Title
	}
	if req.Description != "" {
		updated.Description = req.Description
	}
	if req.ScheduledDate != nil {
		updated.ScheduledDate = *req.ScheduledDate
	}
	if req.Status != "" {
		updated.Status = models.SessionStatus(req.Status)
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.sessions.Update(ctx, &updated); err != nil {
		metrics.SessionOperations.WithLabelValues("update", "store_failed").Inc()
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	metrics.SessionOperations.WithLabelValues("update", "success").Inc()
	return &updated, nil
}

// Delete removes a session; only the session's mentor may do so
func (s *SessionService) Delete(ctx context.Context, identity models.Identity, id string) error {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		metrics.SessionOperations.WithLabelValues("delete", "not_found").Inc()
		return ErrSessionNotFound
	}

	if err := policy.Check(policy.SessionDelete, identity, session); err != nil {
		metrics.SessionOperations.WithLabelValues("delete", "forbidden").Inc()
		logger.Warn("Session delete denied",
			zap.String("session_id", id),
			zap.String("user_id", identity.ID))
		return err
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		metrics.SessionOperations.WithLabelValues("delete", "store_failed").Inc()
		return fmt.Errorf("failed to delete session: %w", err)
	}

	metrics.SessionOperations.WithLabelValues("delete", "success").Inc()
	logger.Info("Session deleted",
		zap.String("session_id", id),
		zap.String("mentor_id", identity.ID))
	return nil
}
