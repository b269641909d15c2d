package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/features/ledger/models"
	taskmodels "skyton-backend/internal/features/task/models"
	taskrepo "skyton-backend/internal/features/task/repository"
	usermodels "skyton-backend/internal/features/user/models"
	userrepo "skyton-backend/internal/features/user/repository"
	"skyton-backend/internal/metrics"
)

// MembershipChecker probes whether a user joined a channel. A provider
// failure must come back as an error, never as "not a member".
type MembershipChecker interface {
	IsChannelMember(ctx context.Context, userID int64, channel string) (bool, error)
}

// Notifier enqueues an outbound bot message. Best-effort: failures are
// logged and never unwind a committed state change.
type Notifier interface {
	Enqueue(ctx context.Context, chatID int64, text string) error
}

// LedgerService is the task-completion state machine. Per (user, task) the
// states are absent -> pending -> completed, with completed terminal; every
// reward is credited exactly once.
type LedgerService interface {
	// CompleteTask applies the completed transition: sets the flag,
	// credits the reward and clears any pending entry, all in one
	// conditional write. Completing an already-completed task is a
	// successful no-op.
	CompleteTask(ctx context.Context, userID int64, taskID string) error
	// RequestManualVerification queues the task for admin review. Fails
	// closed on a completed task; requesting an already-pending task is a
	// successful no-op.
	RequestManualVerification(ctx context.Context, userID int64, taskID string) error
	// RejectManualVerification removes the pending entry without reward;
	// the task returns to absent and may be re-requested.
	RejectManualVerification(ctx context.Context, userID int64, taskID string) error
	// VerifyAndComplete is the user-facing "I did the task" entry point;
	// it dispatches on the task's verification variant.
	VerifyAndComplete(ctx context.Context, userID int64, taskID string) (*models.VerifyResult, error)
	// PerformCheckIn credits the daily check-in once per calendar day.
	PerformCheckIn(ctx context.Context, userID int64) (*models.CheckInResult, error)
}

type ledgerService struct {
	users      userrepo.UserRepository
	tasks      taskrepo.TaskRepository
	membership MembershipChecker
	notifier   Notifier
	checkInLoc *time.Location

	now func() time.Time
}

func NewLedgerService(
	users userrepo.UserRepository,
	tasks taskrepo.TaskRepository,
	membership MembershipChecker,
	notifier Notifier,
	checkInLoc *time.Location,
) LedgerService {
	if checkInLoc == nil {
		checkInLoc = time.UTC
	}
	return &ledgerService{
		users:      users,
		tasks:      tasks,
		membership: membership,
		notifier:   notifier,
		checkInLoc: checkInLoc,
		now:        time.Now,
	}
}

// verification is the closed set of completion paths. Task type and
// verification type collapse into exactly one variant here, instead of
// string checks scattered across call sites.
type verification int

const (
	// verifyTrusted completes on click; the original platform trusts the
	// client for site visits and follows.
	verifyTrusted verification = iota
	// verifyChannelJoin requires a positive membership probe first.
	verifyChannelJoin
	// verifyManual queues for admin review.
	verifyManual
	// verifySystem tasks (check-in, referral) are credited only by their
	// dedicated flows, never by a task click.
	verifySystem
)

func verificationFor(task *taskmodels.Task) verification {
	switch {
	case task.Type == taskmodels.TypeDailyCheckIn || task.Type == taskmodels.TypeReferral:
		return verifySystem
	case task.VerificationType == taskmodels.VerificationManual:
		return verifyManual
	case task.Type == taskmodels.TypeTelegramJoin:
		return verifyChannelJoin
	default:
		return verifyTrusted
	}
}

func (s *ledgerService) CompleteTask(ctx context.Context, userID int64, taskID string) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	completed := false
	err = s.users.Mutate(ctx, userID, func(u *usermodels.User) (bool, error) {
		if u.TaskCompleted(taskID) {
			return false, nil
		}
		if u.Tasks == nil {
			u.Tasks = map[string]bool{}
		}
		u.Tasks[taskID] = true
		u.Balance += task.Reward
		delete(u.Pending, taskID)
		completed = true
		return true, nil
	})
	if err != nil {
		return err
	}

	if completed {
		metrics.TasksCompleted.WithLabelValues(string(task.Type)).Inc()
		log.Info().
			Int64("user_id", userID).
			Str("task_id", taskID).
			Int64("reward", task.Reward).
			Msg("task completed")
		s.notify(ctx, userID, fmt.Sprintf("✅ Task <b>%s</b> completed! +%d STON", task.Title, task.Reward))
	}
	return nil
}

func (s *ledgerService) RequestManualVerification(ctx context.Context, userID int64, taskID string) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	requested := false
	err = s.users.Mutate(ctx, userID, func(u *usermodels.User) (bool, error) {
		if u.TaskCompleted(taskID) {
			return false, apperr.Newf(apperr.CodeConflict, "task %s already completed", taskID)
		}
		if u.TaskPending(taskID) {
			return false, nil
		}
		if u.Pending == nil {
			u.Pending = map[string]usermodels.PendingTask{}
		}
		u.Pending[taskID] = usermodels.PendingTask{
			Title:       task.Title,
			Target:      task.Target,
			Reward:      task.Reward,
			RequestedAt: s.now(),
		}
		requested = true
		return true, nil
	})
	if err != nil {
		return err
	}

	if requested {
		metrics.VerificationsRequested.Inc()
		log.Info().
			Int64("user_id", userID).
			Str("task_id", taskID).
			Msg("manual verification requested")
	}
	return nil
}

func (s *ledgerService) RejectManualVerification(ctx context.Context, userID int64, taskID string) error {
	return s.users.Mutate(ctx, userID, func(u *usermodels.User) (bool, error) {
		if !u.TaskPending(taskID) {
			return false, apperr.Newf(apperr.CodeNotFound, "task %s is not pending for user %d", taskID, userID)
		}
		delete(u.Pending, taskID)
		return true, nil
	})
}

func (s *ledgerService) VerifyAndComplete(ctx context.Context, userID int64, taskID string) (*models.VerifyResult, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	switch verificationFor(task) {
	case verifySystem:
		return nil, apperr.Newf(apperr.CodeInvalidInput, "task type %s is credited by the system, not by verification", task.Type)

	case verifyManual:
		if err := s.RequestManualVerification(ctx, userID, taskID); err != nil {
			return nil, err
		}
		return &models.VerifyResult{Status: models.VerifyStatusPending}, nil

	case verifyChannelJoin:
		isMember, err := s.membership.IsChannelMember(ctx, userID, task.Target)
		if err != nil {
			// Provider failure: no state change, caller may retry.
			return nil, err
		}
		if !isMember {
			return nil, apperr.Newf(apperr.CodeUnverified, "not a member of %s", task.Target)
		}
		fallthrough

	default:
		if err := s.CompleteTask(ctx, userID, taskID); err != nil {
			return nil, err
		}
		return &models.VerifyResult{Status: models.VerifyStatusCompleted, Reward: task.Reward}, nil
	}
}

func (s *ledgerService) PerformCheckIn(ctx context.Context, userID int64) (*models.CheckInResult, error) {
	// Resolved from the catalog so operators can retune the reward
	// without a deploy; a missing definition fails closed.
	task, err := s.tasks.GetByType(ctx, taskmodels.TypeDailyCheckIn)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, apperr.New(apperr.CodeConfigError, "daily check-in task is not configured")
		}
		return nil, err
	}

	now := s.now()
	err = s.users.Mutate(ctx, userID, func(u *usermodels.User) (bool, error) {
		if u.LastCheckIn != nil && sameCalendarDay(*u.LastCheckIn, now, s.checkInLoc) {
			return false, apperr.New(apperr.CodeConflict, "already checked in today")
		}
		u.Balance += task.Reward
		u.LastCheckIn = &now
		if u.Tasks == nil {
			u.Tasks = map[string]bool{}
		}
		u.Tasks[task.ID] = true
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CheckIns.Inc()
	log.Info().Int64("user_id", userID).Int64("reward", task.Reward).Msg("daily check-in")
	return &models.CheckInResult{Reward: task.Reward, CheckedInAt: now}, nil
}

// sameCalendarDay compares calendar dates in loc. Zeroing the time of day
// on both sides means 23:59 and 00:01 the next minute are different days,
// which is the intended window.
func sameCalendarDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

func (s *ledgerService) notify(ctx context.Context, chatID int64, text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Enqueue(ctx, chatID, text); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("notification enqueue failed")
	}
}
