package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/common/validation"
	"skyton-backend/internal/features/task/models"
	"skyton-backend/internal/features/task/repository"
)

// CreateTaskInput carries the operator-supplied task definition. ID is
// optional; a uuid is generated when blank.
type CreateTaskInput struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title" binding:"required"`
	Description      string                  `json:"description"`
	Target           string                  `json:"target"`
	Reward           int64                   `json:"reward"`
	Type             models.Type             `json:"type" binding:"required"`
	VerificationType models.VerificationType `json:"verification_type" binding:"required"`
	Active           *bool                   `json:"active"`
}

type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetByType(ctx context.Context, taskType models.Type) (*models.Task, error)
	Update(ctx context.Context, id string, input CreateTaskInput) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*models.Task, error)
	ListAll(ctx context.Context) ([]*models.Task, error)
}

type taskService struct {
	repo repository.TaskRepository
}

func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{
		repo: repo,
	}
}

func validateInput(input CreateTaskInput) error {
	if err := validation.ValidateTitle(input.Title); err != nil {
		return apperr.Wrap(err, apperr.CodeInvalidInput, "title")
	}
	if err := validation.ValidateDescription(input.Description); err != nil {
		return apperr.Wrap(err, apperr.CodeInvalidInput, "description")
	}
	if err := validation.ValidateTarget(input.Target); err != nil {
		return apperr.Wrap(err, apperr.CodeInvalidInput, "target")
	}
	if input.Reward < 0 {
		return apperr.New(apperr.CodeInvalidInput, "reward cannot be negative")
	}
	if !input.Type.Valid() {
		return apperr.Newf(apperr.CodeInvalidInput, "unknown task type: %s", input.Type)
	}
	if !input.VerificationType.Valid() {
		return apperr.Newf(apperr.CodeInvalidInput, "unknown verification type: %s", input.VerificationType)
	}
	if input.Type == models.TypeTelegramJoin {
		if err := validation.ValidateChannelHandle(input.Target); err != nil {
			return apperr.Wrap(err, apperr.CodeInvalidInput, "target")
		}
	}
	return nil
}

func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.New().String()
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	now := time.Now()
	task := &models.Task{
		ID:               id,
		Title:            strings.TrimSpace(input.Title),
		Description:      input.Description,
		Target:           strings.TrimSpace(input.Target),
		Reward:           input.Reward,
		Type:             input.Type,
		VerificationType: input.VerificationType,
		Active:           active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *taskService) GetByType(ctx context.Context, taskType models.Type) (*models.Task, error) {
	return s.repo.GetByType(ctx, taskType)
}

func (s *taskService) Update(ctx context.Context, id string, input CreateTaskInput) (*models.Task, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = strings.TrimSpace(input.Title)
	task.Description = input.Description
	task.Target = strings.TrimSpace(input.Target)
	task.Reward = input.Reward
	task.Type = input.Type
	task.VerificationType = input.VerificationType
	if input.Active != nil {
		task.Active = *input.Active
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *taskService) ListActive(ctx context.Context) ([]*models.Task, error) {
	return s.repo.List(ctx, true)
}

func (s *taskService) ListAll(ctx context.Context) ([]*models.Task, error) {
	return s.repo.List(ctx, false)
}
