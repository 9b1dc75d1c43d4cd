package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/apperrors"
)

func newUser(id, email string, role models.Role) *models.User {
	return &models.User{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestMemoryUserStore_CreateAndLookup(t *testing.T) {
	store := repository.NewMemoryUserStore()
	ctx := context.Background()

	user := newUser("u1", "mentor@example.com", models.RoleMentor)
	assert.NoError(t, store.Create(ctx, user))

	byID, err := store.GetByID(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, user, byID)

	byEmail, err := store.GetByEmail(ctx, "mentor@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user, byEmail)
}

func TestMemoryUserStore_DuplicateEmail(t *testing.T) {
	store := repository.NewMemoryUserStore()
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, newUser("u1", "taken@example.com", models.RoleMentor)))

	// Same email, different everything else
	err := store.Create(ctx, newUser("u2", "taken@example.com", models.RoleMentee))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// The second record must not be visible
	_, err = store.GetByID(ctx, "u2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryUserStore_EmailIsCaseSensitive(t *testing.T) {
	store := repository.NewMemoryUserStore()
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, newUser("u1", "User@Example.com", models.RoleMentor)))
	assert.NoError(t, store.Create(ctx, newUser("u2", "user@example.com", models.RoleMentee)))

	found, err := store.GetByEmail(ctx, "user@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "u2", found.ID)
}

func TestMemoryUserStore_NotFound(t *testing.T) {
	store := repository.NewMemoryUserStore()
	ctx := context.Background()

	_, err := store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMemoryUserStore_ConcurrentCreates(t *testing.T) {
	store := repository.NewMemoryUserStore()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	// Every goroutine races for the same email; exactly one may win
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- store.Create(ctx, newUser(fmt.Sprintf("u%d", i), "contended@example.com", models.RoleMentee))
		}(i)
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
		}
	}
	assert.Equal(t, 1, created)
}
