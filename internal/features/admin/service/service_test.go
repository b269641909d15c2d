package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyton-backend/internal/common/apperr"
	ledgersvc "skyton-backend/internal/features/ledger/service"
	taskmodels "skyton-backend/internal/features/task/models"
	usermodels "skyton-backend/internal/features/user/models"
	userrepo "skyton-backend/internal/features/user/repository"
	wmodels "skyton-backend/internal/features/withdrawal/models"
	wrepo "skyton-backend/internal/features/withdrawal/repository"
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

type fakeWithdrawalRepo struct {
	mu          sync.Mutex
	withdrawals map[string]*wmodels.Withdrawal
}

func newFakeWithdrawalRepo(ws ...*wmodels.Withdrawal) *fakeWithdrawalRepo {
	r := &fakeWithdrawalRepo{withdrawals: map[string]*wmodels.Withdrawal{}}
	for _, w := range ws {
		r.withdrawals[w.ID] = cloneWithdrawal(w)
	}
	return r
}

func cloneWithdrawal(w *wmodels.Withdrawal) *wmodels.Withdrawal {
	raw, _ := json.Marshal(w)
	var out wmodels.Withdrawal
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (r *fakeWithdrawalRepo) Create(_ context.Context, w *wmodels.Withdrawal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.withdrawals[w.ID]; ok {
		return apperr.Newf(apperr.CodeConflict, "withdrawal %s already exists", w.ID)
	}
	r.withdrawals[w.ID] = cloneWithdrawal(w)
	return nil
}

func (r *fakeWithdrawalRepo) GetByID(_ context.Context, id string) (*wmodels.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return nil, apperr.Newf(apperr.CodeNotFound, "withdrawal %s not found", id)
	}
	return cloneWithdrawal(w), nil
}

func (r *fakeWithdrawalRepo) Mutate(_ context.Context, id string, fn wrepo.MutateFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.withdrawals[id]
	if !ok {
		return apperr.Newf(apperr.CodeNotFound, "withdrawal %s not found", id)
	}
	work := cloneWithdrawal(w)
	dirty, err := fn(work)
	if err != nil {
		return err
	}
	if dirty {
		r.withdrawals[id] = work
	}
	return nil
}

func (r *fakeWithdrawalRepo) ListByUser(_ context.Context, userID int64) ([]*wmodels.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*wmodels.Withdrawal
	for _, w := range r.withdrawals {
		if w.UserID == userID {
			out = append(out, cloneWithdrawal(w))
		}
	}
	return out, nil
}

func (r *fakeWithdrawalRepo) ListByStatus(_ context.Context, status wmodels.Status) ([]*wmodels.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*wmodels.Withdrawal
	for _, w := range r.withdrawals {
		if w.Status == status {
			out = append(out, cloneWithdrawal(w))
		}
	}
	return out, nil
}

func manualTask(id string, reward int64) *taskmodels.Task {
	return &taskmodels.Task{
		ID: id, Title: "Follow us", Target: "@skyton_tw",
		Reward: reward, Type: taskmodels.TypeTwitterFollow,
		VerificationType: taskmodels.VerificationManual, Active: true,
	}
}

func newTestAdmin(users *fakeUserRepo, tasks *fakeTaskRepo, withdrawals *fakeWithdrawalRepo) AdminService {
	ledger := ledgersvc.NewLedgerService(users, tasks, nil, nil, time.UTC)
	return NewAdminService(users, ledger, withdrawals, nil)
}

func TestListPendingVerificationsFlattens(t *testing.T) {
	ctx := context.Background()
	u1 := usermodels.New(usermodels.Identity{ID: 1, Username: "alice"}, nil)
	u1.Pending["t1"] = usermodels.PendingTask{Title: "Task 1", Target: "@ch1", Reward: 10, RequestedAt: time.Unix(200, 0)}
	u1.Pending["t2"] = usermodels.PendingTask{Title: "Task 2", Target: "@ch2", Reward: 20, RequestedAt: time.Unix(100, 0)}
	u2 := usermodels.New(usermodels.Identity{ID: 2, Username: "bob"}, nil)
	u2.Pending["t1"] = usermodels.PendingTask{Title: "Task 1", Target: "@ch1", Reward: 10, RequestedAt: time.Unix(300, 0)}

	svc := newTestAdmin(newFakeUserRepo(u1, u2), newFakeTaskRepo(), newFakeWithdrawalRepo())

	list, err := svc.ListPendingVerifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	// Oldest request first.
	assert.Equal(t, "t2", list[0].TaskID)
	assert.Equal(t, int64(1), list[0].UserID)
	assert.Equal(t, "alice", list[0].Username)
	assert.Equal(t, "Task 2", list[0].TaskTitle)
	assert.Equal(t, int64(2), list[2].UserID)
}

func TestApproveVerificationCompletesTask(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(usermodels.New(usermodels.Identity{ID: 1}, nil))
	tasks := newFakeTaskRepo(manualTask("m1", 80))
	svc := newTestAdmin(users, tasks, newFakeWithdrawalRepo())

	ledger := ledgersvc.NewLedgerService(users, tasks, nil, nil, time.UTC)
	require.NoError(t, ledger.RequestManualVerification(ctx, 1, "m1"))

	require.NoError(t, svc.ApproveVerification(ctx, 1, "m1"))

	u, _ := users.GetByID(ctx, 1)
	assert.True(t, u.TaskCompleted("m1"))
	assert.False(t, u.TaskPending("m1"))
	assert.Equal(t, int64(usermodels.DefaultBalance+80), u.Balance)
}

func TestRejectVerificationAllowsReRequest(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo(usermodels.New(usermodels.Identity{ID: 1}, nil))
	tasks := newFakeTaskRepo(manualTask("m1", 80))
	svc := newTestAdmin(users, tasks, newFakeWithdrawalRepo())

	ledger := ledgersvc.NewLedgerService(users, tasks, nil, nil, time.UTC)
	require.NoError(t, ledger.RequestManualVerification(ctx, 1, "m1"))

	require.NoError(t, svc.RejectVerification(ctx, 1, "m1"))

	u, _ := users.GetByID(ctx, 1)
	assert.False(t, u.TaskCompleted("m1"))
	assert.False(t, u.TaskPending("m1"))
	assert.Equal(t, int64(usermodels.DefaultBalance), u.Balance)

	require.NoError(t, ledger.RequestManualVerification(ctx, 1, "m1"))
	u, _ = users.GetByID(ctx, 1)
	assert.True(t, u.TaskPending("m1"))
}

func pendingWithdrawal(id string, userID, amount int64) *wmodels.Withdrawal {
	return &wmodels.Withdrawal{
		ID: id, UserID: userID, Amount: amount,
		WalletAddress: "EQCD39VS5jcptHL8vMjEXrzGaRcCVYto7HUn4bpAOg8xqB2N",
		Status:        wmodels.StatusPending,
		CreatedAt:     time.Now(),
	}
}

func TestApproveWithdrawalDebitsBalance(t *testing.T) {
	ctx := context.Background()
	user := usermodels.New(usermodels.Identity{ID: 1}, nil)
	user.Balance = 500
	users := newFakeUserRepo(user)
	withdrawals := newFakeWithdrawalRepo(pendingWithdrawal("w1", 1, 300))
	svc := newTestAdmin(users, newFakeTaskRepo(), withdrawals)

	require.NoError(t, svc.ApproveWithdrawal(ctx, "w1"))

	u, _ := users.GetByID(ctx, 1)
	assert.Equal(t, int64(200), u.Balance)

	w, _ := withdrawals.GetByID(ctx, "w1")
	assert.Equal(t, wmodels.StatusApproved, w.Status)
	assert.NotNil(t, w.ApprovedAt)

	// Terminal: no second resolution, no second debit.
	err := svc.ApproveWithdrawal(ctx, "w1")
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
	u, _ = users.GetByID(ctx, 1)
	assert.Equal(t, int64(200), u.Balance)
}

func TestApproveWithdrawalInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	user := usermodels.New(usermodels.Identity{ID: 1}, nil)
	user.Balance = 100
	users := newFakeUserRepo(user)
	withdrawals := newFakeWithdrawalRepo(pendingWithdrawal("w1", 1, 300))
	svc := newTestAdmin(users, newFakeTaskRepo(), withdrawals)

	err := svc.ApproveWithdrawal(ctx, "w1")
	assert.True(t, apperr.Is(err, apperr.CodeConflict))

	u, _ := users.GetByID(ctx, 1)
	assert.Equal(t, int64(100), u.Balance, "no partial debit")

	// The claimed request ends rejected, not re-claimable.
	w, _ := withdrawals.GetByID(ctx, "w1")
	assert.Equal(t, wmodels.StatusRejected, w.Status)
	assert.NotNil(t, w.RejectedAt)
	assert.Nil(t, w.ApprovedAt)
}

func TestRejectWithdrawalKeepsBalance(t *testing.T) {
	ctx := context.Background()
	user := usermodels.New(usermodels.Identity{ID: 1}, nil)
	user.Balance = 500
	users := newFakeUserRepo(user)
	withdrawals := newFakeWithdrawalRepo(pendingWithdrawal("w1", 1, 300))
	svc := newTestAdmin(users, newFakeTaskRepo(), withdrawals)

	require.NoError(t, svc.RejectWithdrawal(ctx, "w1"))

	u, _ := users.GetByID(ctx, 1)
	assert.Equal(t, int64(500), u.Balance)

	w, _ := withdrawals.GetByID(ctx, "w1")
	assert.Equal(t, wmodels.StatusRejected, w.Status)
	assert.NotNil(t, w.RejectedAt)

	err := svc.RejectWithdrawal(ctx, "w1")
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
}
