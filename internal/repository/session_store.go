package repository

import (
	"context"
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
)

// MemorySessionStore is the in-memory session store. Same locking
// discipline as MemoryUserStore: go-cache for lookups, mu for writes and
// the insertion-order index.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions *cache.Cache
	order    []string
}

// NewMemorySessionStore creates an empty session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemorySessionStore) Create(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions.Set(session.ID, session, cache.NoExpiration)
	s.order = append(s.order, session.ID)
	return nil
}

func (s *MemorySessionStore) GetByID(_ context.Context, id string) (*models.Session, error) {
	if session, ok := s.lookup(id); ok {
		return session, nil
	}
	return nil, apperrors.NotFoundError("session")
}

func (s *MemorySessionStore) ListByMentor(_ context.Context, mentorID string) ([]*models.Session, error) {
	return s.list(func(session *models.Session) bool {
		return session.MentorID == mentorID
	}), nil
}

func (s *MemorySessionStore) ListByMentee(_ context.Context, menteeID string) ([]*models.Session, error) {
	return s.list(func(session *models.Session) bool {
		return session.MenteeID == menteeID
	}), nil
}

func (s *MemorySessionStore) Update(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(session.ID); !ok {
		return apperrors.NotFoundError("session")
	}
	s.sessions.Set(session.ID, session, cache.NoExpiration)
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(id); !ok {
		return apperrors.NotFoundError("session")
	}
	s.sessions.Delete(id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemorySessionStore) list(match func(*models.Session) bool) []*models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Session, 0)
	for _, id := range s.order {
		if session, ok := s.lookup(id); ok && match(session) {
			result = append(result, session)
		}
	}
	return result
}

func (s *MemorySessionStore) lookup(id string) (*models.Session, bool) {
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*models.Session), true
}

var _ SessionStore = (*MemorySessionStore)(nil)
