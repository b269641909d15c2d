package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/features/task/models"
)

type fakeTaskRepo struct {
	tasks map[string]*models.Task
}

func newFakeTaskRepo(tasks ...*models.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{tasks: map[string]*models.Task{}}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return r
}

func (r *fakeTaskRepo) Create(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; ok {
		return apperr.Newf(apperr.CodeConflict, "task %s already exists", task.ID)
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, apperr.Newf(apperr.CodeNotFound, "task %s not found", id)
	}
	return t, nil
}

func (r *fakeTaskRepo) GetByType(_ context.Context, taskType models.Type) (*models.Task, error) {
	for _, t := range r.tasks {
		if t.Type == taskType {
			return t, nil
		}
	}
	return nil, apperr.Newf(apperr.CodeNotFound, "no task of type %s", taskType)
}

func (r *fakeTaskRepo) Update(_ context.Context, task *models.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return apperr.Newf(apperr.CodeNotFound, "task %s not found", task.ID)
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return apperr.Newf(apperr.CodeNotFound, "task %s not found", id)
	}
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) List(_ context.Context, onlyActive bool) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range r.tasks {
		if onlyActive && !t.Active {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func validInput() CreateTaskInput {
	return CreateTaskInput{
		Title:            "Join our channel",
		Description:      "Join and stay for the airdrop",
		Target:           "@skyton_news",
		Reward:           50,
		Type:             models.TypeTelegramJoin,
		VerificationType: models.VerificationAuto,
	}
}

func TestCreateGeneratesID(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	task, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, parseErr := uuid.Parse(task.ID)
	assert.NoError(t, parseErr, "blank id should become a uuid")
	assert.True(t, task.Active, "active defaults to true")
	assert.False(t, task.CreatedAt.IsZero())
}

func TestCreateKeepsExplicitID(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	input := validInput()
	input.ID = "daily_checkin"
	input.Type = models.TypeDailyCheckIn
	input.Target = ""
	input.VerificationType = models.VerificationAuto

	task, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "daily_checkin", task.ID)
}

func TestCreateHonorsActiveFlag(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	inactive := false
	input := validInput()
	input.Active = &inactive

	task, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.False(t, task.Active)
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateTaskInput)
	}{
		{"empty title", func(in *CreateTaskInput) { in.Title = "  " }},
		{"negative reward", func(in *CreateTaskInput) { in.Reward = -1 }},
		{"unknown type", func(in *CreateTaskInput) { in.Type = "dance" }},
		{"unknown verification", func(in *CreateTaskInput) { in.VerificationType = "vibes" }},
		{"bad channel handle", func(in *CreateTaskInput) { in.Target = "no spaces!" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTaskService(newFakeTaskRepo())
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), input)
			assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))
		})
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newFakeTaskRepo())

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	input := validInput()
	input.Title = "Join the new channel"
	input.Reward = 75
	updated, err := svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Join the new channel", updated.Title)
	assert.Equal(t, int64(75), updated.Reward)
	assert.True(t, updated.Active, "active unchanged when omitted")

	_, err = svc.Update(ctx, "missing", validInput())
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestListActiveFiltersInactive(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newFakeTaskRepo(
		&models.Task{ID: "a", Title: "A", Type: models.TypeVisitSite, VerificationType: models.VerificationAuto, Active: true},
		&models.Task{ID: "b", Title: "B", Type: models.TypeVisitSite, VerificationType: models.VerificationAuto, Active: false},
	))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newFakeTaskRepo(
		&models.Task{ID: "a", Title: "A", Type: models.TypeVisitSite, VerificationType: models.VerificationAuto, Active: true},
	))

	require.NoError(t, svc.Delete(ctx, "a"))
	_, err := svc.GetByID(ctx, "a")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))

	err = svc.Delete(ctx, "a")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}
