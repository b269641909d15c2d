package repository

import (
	"context"

	"skyton-backend/internal/features/user/models"
)

// MutateFunc inspects and optionally rewrites a user document. Returning
// false skips the write entirely (read-only outcome, e.g. an idempotent
// no-op). Returning an error aborts without writing.
type MutateFunc func(u *models.User) (dirty bool, err error)

type UserRepository interface {
	// Create stores a new document and fails with Conflict if one
	// already exists for the id.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// Mutate runs fn against the current document under an optimistic
	// transaction keyed on the document: if any other writer touches the
	// user between read and write, the call fails with a retryable
	// StoreError and nothing is applied. Every read-check-write in the
	// reward ledger goes through here.
	Mutate(ctx context.Context, id int64, fn MutateFunc) error
	// List scans every user document. Full-collection scan; used only by
	// the admin pending-verification listing.
	List(ctx context.Context) ([]*models.User, error)
}
