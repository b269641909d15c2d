package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyton-backend/internal/common/apperr"
	taskmodels "skyton-backend/internal/features/task/models"
	usermodels "skyton-backend/internal/features/user/models"
	userrepo "skyton-backend/internal/features/user/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[int64]*usermodels.User
}

func newFakeUserRepo(users ...*usermodels.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]*usermodels.User{}}
	for _, u := range users {
		r.users[u.ID] = cloneUser(u)
	}
	return r
}

func cloneUser(u *usermodels.User) *usermodels.User {
	raw, _ := json.Marshal(u)
	var out usermodels.User
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (r *fakeUserRepo) Create(_ context.Context, user *usermodels.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return apperr.Newf(apperr.CodeConflict, "user %d already exists", user.ID)
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*usermodels.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.Newf(apperr.CodeNotFound, "user %d not found", id)
	}
	return cloneUser(u), nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *usermodels.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *fakeUserRepo) Mutate(_ context.Context, id int64, fn userrepo.MutateFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperr.Newf(apperr.CodeNotFound, "user %d not found", id)
	}
	work := cloneUser(u)
	dirty, err := fn(work)
	if err != nil {
		return err
	}
	if dirty {
		r.users[id] = work
	}
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*usermodels.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*usermodels.User
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

type fakeTaskRepo struct {
	tasks map[string]*taskmodels.Task
}

func newFakeTaskRepo(tasks ...*taskmodels.Task) *fakeTaskRepo {
	r := &fakeTaskRepo{tasks: map[string]*taskmodels.Task{}}
	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return r
}

func (r *fakeTaskRepo) Create(_ context.Context, task *taskmodels.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id string) (*taskmodels.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, apperr.Newf(apperr.CodeNotFound, "task %s not found", id)
	}
	return t, nil
}

func (r *fakeTaskRepo) GetByType(_ context.Context, taskType taskmodels.Type) (*taskmodels.Task, error) {
	for _, t := range r.tasks {
		if t.Type == taskType {
			return t, nil
		}
	}
	return nil, apperr.Newf(apperr.CodeNotFound, "no task of type %s", taskType)
}

func (r *fakeTaskRepo) Update(_ context.Context, task *taskmodels.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) List(_ context.Context, onlyActive bool) ([]*taskmodels.Task, error) {
	var out []*taskmodels.Task
	for _, t := range r.tasks {
		if onlyActive && !t.Active {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func referralTask(reward int64) *taskmodels.Task {
	return &taskmodels.Task{
		ID: "referral", Title: "Invite friends", Reward: reward,
		Type: taskmodels.TypeReferral, VerificationType: taskmodels.VerificationAuto, Active: true,
	}
}

func referrer(id int64) *usermodels.User {
	return usermodels.New(usermodels.Identity{ID: id, Username: "referrer"}, nil)
}

func TestAttributeCreditsReferrerOnce(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(referrer(100))
	svc := NewReferralService(users, newFakeTaskRepo(referralTask(100)), nil)

	invitee := usermodels.Identity{ID: 200, Username: "newbie", FirstName: "New"}
	created, err := svc.Attribute(ctx, invitee, 100)
	require.NoError(t, err)

	require.NotNil(t, created.InvitedBy)
	assert.Equal(t, int64(100), *created.InvitedBy)
	assert.Equal(t, int64(usermodels.DefaultBalance), created.Balance)
	assert.Equal(t, int64(usermodels.DefaultEnergy), created.Energy)

	ref, err := users.GetByID(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(usermodels.DefaultBalance+100), ref.Balance)
	assert.Equal(t, int64(1), ref.Referrals)
	assert.Equal(t, []int64{200}, ref.ReferredUsers)
	assert.Equal(t, int64(len(ref.ReferredUsers)), ref.Referrals)
}

func TestAttributeSelfReferral(t *testing.T) {
	users := newFakeUserRepo(referrer(100))
	svc := NewReferralService(users, newFakeTaskRepo(referralTask(100)), nil)

	_, err := svc.Attribute(context.Background(), usermodels.Identity{ID: 100}, 100)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))
}

func TestAttributeMissingReferrer(t *testing.T) {
	svc := NewReferralService(newFakeUserRepo(), newFakeTaskRepo(referralTask(100)), nil)

	_, err := svc.Attribute(context.Background(), usermodels.Identity{ID: 200}, 100)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestAttributeReplayIsConflict(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(referrer(100))
	svc := NewReferralService(users, newFakeTaskRepo(referralTask(100)), nil)

	invitee := usermodels.Identity{ID: 200, Username: "newbie"}
	_, err := svc.Attribute(ctx, invitee, 100)
	require.NoError(t, err)

	_, err = svc.Attribute(ctx, invitee, 100)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	// Replay leaves the referrer's counters untouched.
	ref, _ := users.GetByID(ctx, 100)
	assert.Equal(t, int64(1), ref.Referrals)
	assert.Equal(t, int64(usermodels.DefaultBalance+100), ref.Balance)
}

func TestAttributeExistingUserIsConflict(t *testing.T) {
	ctx := context.Background()
	existing := usermodels.New(usermodels.Identity{ID: 200}, nil)
	users := newFakeUserRepo(referrer(100), existing)
	svc := NewReferralService(users, newFakeTaskRepo(referralTask(100)), nil)

	_, err := svc.Attribute(ctx, usermodels.Identity{ID: 200}, 100)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	ref, _ := users.GetByID(ctx, 100)
	assert.Equal(t, int64(0), ref.Referrals)
	assert.Equal(t, int64(usermodels.DefaultBalance), ref.Balance)
}

func TestAttributeWithoutConfigFailsClosed(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(referrer(100))
	svc := NewReferralService(users, newFakeTaskRepo(), nil)

	_, err := svc.Attribute(ctx, usermodels.Identity{ID: 200}, 100)
	assert.True(t, apperr.Is(err, apperr.CodeConfigError))

	// Fail-closed means no invitee account was created either.
	_, err = users.GetByID(ctx, 200)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestAttributeMarksReferralTaskComplete(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(referrer(100))
	svc := NewReferralService(users, newFakeTaskRepo(referralTask(100)), nil)

	_, err := svc.Attribute(ctx, usermodels.Identity{ID: 200}, 100)
	require.NoError(t, err)

	ref, _ := users.GetByID(ctx, 100)
	assert.True(t, ref.TaskCompleted("referral"))
}
