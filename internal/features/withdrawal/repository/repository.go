package repository

import (
	"context"

	"skyton-backend/internal/features/withdrawal/models"
)

// MutateFunc mirrors the user repository's optimistic-transaction hook.
type MutateFunc func(w *models.Withdrawal) (dirty bool, err error)

type WithdrawalRepository interface {
	Create(ctx context.Context, w *models.Withdrawal) error
	GetByID(ctx context.Context, id string) (*models.Withdrawal, error)
	// Mutate applies fn under an optimistic transaction on the request
	// document; status transitions go through here so a resolved request
	// can never be resolved twice.
	Mutate(ctx context.Context, id string, fn MutateFunc) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Withdrawal, error)
	ListByStatus(ctx context.Context, status models.Status) ([]*models.Withdrawal, error)
}
