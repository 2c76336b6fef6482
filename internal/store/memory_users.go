package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
//
// Records live in an ordered slice so List preserves insertion order; byID
// maps an identifier to its slice position for O(1) lookups. A sync.RWMutex
// guards both structures: readers share, writers exclude. The collection is
// created empty at process start and discarded at process exit.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	byID   map[int64]int
	logger *logger.Logger
}

// NewUserRepository constructs an empty in-memory [UserRepository].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		byID:   make(map[int64]int),
		logger: logger,
	}
}

// List returns a copy of the current records in insertion order. The copy
// lets callers iterate without holding the lock.
func (r *memoryUserRepository) List(_ context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.User, len(r.users))
	copy(snapshot, r.users)

	return snapshot, nil
}

// FindByID returns the record with the given identifier or [ErrUserNotFound].
func (r *memoryUserRepository) FindByID(_ context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return r.users[idx], nil
}

// Upsert inserts user, or replaces the existing record with the same ID in
// place. Replacement retains the record's position in the listing order.
func (r *memoryUserRepository) Upsert(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.byID[user.ID]; ok {
		r.users[idx] = user
		return user, nil
	}

	r.users = append(r.users, user)
	r.byID[user.ID] = len(r.users) - 1

	return user, nil
}

// UpdateByID merges the non-nil fields of upd over the stored record and
// returns the merged result, or [ErrUserNotFound] if the identifier is
// absent. The merge happens under the write lock, so two concurrent partial
// updates to the same record cannot lose each other's fields.
func (r *memoryUserRepository) UpdateByID(_ context.Context, id int64, upd models.UserUpdate) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	upd.ApplyTo(&r.users[idx])

	return r.users[idx], nil
}

// DeleteByID removes the record with the given identifier, preserving the
// order of the remaining records. Returns [ErrUserNotFound] if the
// identifier is absent.
func (r *memoryUserRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return ErrUserNotFound
	}

	r.users = append(r.users[:idx], r.users[idx+1:]...)
	delete(r.byID, id)

	// records after the removed one shifted left by one
	for i := idx; i < len(r.users); i++ {
		r.byID[r.users[i].ID] = i
	}

	return nil
}
