package repository

import (
	"context"

	"skyton-backend/internal/features/task/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	// GetByType returns the first task of the given type. Used to resolve
	// the daily_checkin and referral definitions, of which operators keep
	// exactly one each.
	GetByType(ctx context.Context, taskType models.Type) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyActive bool) ([]*models.Task, error)
}
