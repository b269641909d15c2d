package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/features/task/models"
	"skyton-backend/internal/features/task/repository"
)

type taskRepository struct {
	client redis.UniversalClient
}

func NewTaskRepository(client redis.UniversalClient) repository.TaskRepository {
	return &taskRepository{
		client: client,
	}
}

func taskKey(id string) string {
	return fmt.Sprintf("task:%s", id)
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "marshal task")
	}

	ok, err := r.client.SetNX(ctx, taskKey(task.ID), taskJSON, 0).Result()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "create task")
	}
	if !ok {
		return apperr.Newf(apperr.CodeConflict, "task %s already exists", task.ID)
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	taskJSON, err := r.client.Get(ctx, taskKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.Newf(apperr.CodeNotFound, "task %s not found", id)
		}
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "get task")
	}

	var task models.Task
	if err := json.Unmarshal(taskJSON, &task); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "unmarshal task")
	}

	return &task, nil
}

func (r *taskRepository) GetByType(ctx context.Context, taskType models.Type) (*models.Task, error) {
	tasks, err := r.List(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if task.Type == taskType {
			return task, nil
		}
	}
	return nil, apperr.Newf(apperr.CodeNotFound, "no task of type %s", taskType)
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	exists, err := r.client.Exists(ctx, taskKey(task.ID)).Result()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "check task")
	}
	if exists == 0 {
		return apperr.Newf(apperr.CodeNotFound, "task %s not found", task.ID)
	}

	task.UpdatedAt = time.Now()
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "marshal task")
	}
	if err := r.client.Set(ctx, taskKey(task.ID), taskJSON, 0).Err(); err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "update task")
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, taskKey(id)).Result()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "delete task")
	}
	if n == 0 {
		return apperr.Newf(apperr.CodeNotFound, "task %s not found", id)
	}
	return nil
}

func (r *taskRepository) List(ctx context.Context, onlyActive bool) ([]*models.Task, error) {
	var tasks []*models.Task
	iter := r.client.Scan(ctx, 0, "task:*", 0).Iterator()

	for iter.Next(ctx) {
		taskJSON, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}

		var task models.Task
		if err := json.Unmarshal(taskJSON, &task); err != nil {
			continue
		}

		if onlyActive && !task.Active {
			continue
		}
		tasks = append(tasks, &task)
	}
	if err := iter.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "scan tasks")
	}

	return tasks, nil
}
