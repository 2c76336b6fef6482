package store

import (
	"context"

	"github.com/MKhiriev/go-user-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the single shared mutable collection of user records.
//
// It is written to from two independent execution contexts — the HTTP
// request path and the broker consumer — so every implementation must be
// safe for concurrent use: reads never observe a record mid-mutation and
// concurrent writers cannot lose each other's updates.
type UserRepository interface {
	// List returns a snapshot of all records in stable insertion order.
	List(ctx context.Context) ([]models.User, error)

	// FindByID returns the record with the given identifier or
	// [ErrUserNotFound].
	FindByID(ctx context.Context, id int64) (models.User, error)

	// Upsert inserts the record, or replaces the existing record with the
	// same identifier in place (insertion order retained). Replacement
	// keeps the at-most-one-record-per-ID invariant and makes redelivered
	// broker messages idempotent.
	Upsert(ctx context.Context, user models.User) (models.User, error)

	// UpdateByID merges the non-nil fields of upd over the stored record
	// and returns the merged result, or [ErrUserNotFound].
	UpdateByID(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error)

	// DeleteByID removes the record with the given identifier.
	// Returns [ErrUserNotFound] if no record was removed.
	DeleteByID(ctx context.Context, id int64) error
}
