package repository

import (
	"context"
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
)

// MemoryFeedbackStore is the in-memory feedback store
type MemoryFeedbackStore struct {
	mu        sync.RWMutex
	feedbacks *cache.Cache
	order     []string
}

// NewMemoryFeedbackStore creates an empty feedback store
func NewMemoryFeedbackStore() *MemoryFeedbackStore {
	return &MemoryFeedbackStore{
		feedbacks: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryFeedbackStore) Create(_ context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.feedbacks.Set(feedback.ID, feedback, cache.NoExpiration)
	s.order = append(s.order, feedback.ID)
	return nil
}

func (s *MemoryFeedbackStore) GetByID(_ context.Context, id string) (*models.Feedback, error) {
	if feedback, ok := s.lookup(id); ok {
		return feedback, nil
	}
	return nil, apperrors.NotFoundError("feedback")
}

func (s *MemoryFeedbackStore) ListBySession(_ context.Context, sessionID string) ([]*models.Feedback, error) {
	return s.list(func(feedback *models.Feedback) bool {
		return feedback.SessionID == sessionID
	}), nil
}

func (s *MemoryFeedbackStore) ListByUser(_ context.Context, userID string) ([]*models.Feedback, error) {
	return s.list(func(feedback *models.Feedback) bool {
		return feedback.UserID == userID
	}), nil
}

func (s *MemoryFeedbackStore) Update(_ context.Context, feedback *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(feedback.ID); !ok {
		return apperrors.NotFoundError("feedback")
	}
	s.feedbacks.Set(feedback.ID, feedback, cache.NoExpiration)
	return nil
}

func (s *MemoryFeedbackStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(id); !ok {
		return apperrors.NotFoundError("feedback")
	}
	s.feedbacks.Delete(id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryFeedbackStore) list(match func(*models.Feedback) bool) []*models.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Feedback, 0)
	for _, id := range s.order {
		if feedback, ok := s.lookup(id); ok && match(feedback) {
			result = append(result, feedback)
		}
	}
	return result
}

func (s *MemoryFeedbackStore) lookup(id string) (*models.Feedback, bool) {
	v, ok := s.feedbacks.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*models.Feedback), true
}

var _ FeedbackStore = (*MemoryFeedbackStore)(nil)
