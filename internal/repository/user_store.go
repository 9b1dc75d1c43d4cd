package repository

import (
	"context"
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
)

// MemoryUserStore is the in-memory credential store. Records live in a
// go-cache collection (safe for concurrent reads without extra locking);
// mu serializes writes so the email-uniqueness check, the insert and the
// insertion-order index stay consistent.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users *cache.Cache
	order []string
}

// NewMemoryUserStore creates an empty credential store
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: cache.New(cache.NoExpiration, 0),
	}
}

// Create inserts a user, rejecting duplicate emails. The scan and the insert
// run under one lock so concurrent registrations cannot both claim an email.
func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		if existing, ok := s.lookup(id); ok && existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	s.users.Set(user.ID, user, cache.NoExpiration)
	s.order = append(s.order, user.ID)
	return nil
}

// GetByEmail scans in insertion order and returns the first exact match
func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if user, ok := s.lookup(id); ok && user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.NotFoundError("user")
}

// GetByID returns the user with the given id
func (s *MemoryUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	if user, ok := s.lookup(id); ok {
		return user, nil
	}
	return nil, apperrors.NotFoundError("user")
}

func (s *MemoryUserStore) lookup(id string) (*models.User, bool) {
	v, ok := s.users.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*models.User), true
}

var _ UserStore = (*MemoryUserStore)(nil)
