package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"skyton-backend/internal/common/apperr"
	taskmodels "skyton-backend/internal/features/task/models"
	taskrepo "skyton-backend/internal/features/task/repository"
	usermodels "skyton-backend/internal/features/user/models"
	userrepo "skyton-backend/internal/features/user/repository"
	"skyton-backend/internal/metrics"
)

type Notifier interface {
	Enqueue(ctx context.Context, chatID int64, text string) error
}

// ReferralService links a newly created account to its referrer and
// credits the referrer exactly once.
type ReferralService interface {
	// Attribute creates the invitee's account with invited_by set and
	// credits the referrer. The create is the idempotency guard: once the
	// invitee document exists, a replay fails with Conflict and the
	// referrer's counters stay untouched.
	Attribute(ctx context.Context, invitee usermodels.Identity, referrerID int64) (*usermodels.User, error)
}

type referralService struct {
	users    userrepo.UserRepository
	tasks    taskrepo.TaskRepository
	notifier Notifier
}

func NewReferralService(users userrepo.UserRepository, tasks taskrepo.TaskRepository, notifier Notifier) ReferralService {
	return &referralService{
		users:    users,
		tasks:    tasks,
		notifier: notifier,
	}
}

func (s *referralService) Attribute(ctx context.Context, invitee usermodels.Identity, referrerID int64) (*usermodels.User, error) {
	if invitee.ID == referrerID {
		return nil, apperr.New(apperr.CodeInvalidInput, "cannot refer yourself")
	}

	if _, err := s.users.GetByID(ctx, referrerID); err != nil {
		return nil, err
	}

	// Reward comes from the catalog at attribution time. A missing
	// definition fails closed instead of silently crediting zero.
	task, err := s.tasks.GetByType(ctx, taskmodels.TypeReferral)
	if err != nil {
		if apperr.Is(err, apperr.CodeNotFound) {
			return nil, apperr.New(apperr.CodeConfigError, "referral task is not configured")
		}
		return nil, err
	}

	newUser := usermodels.New(invitee, &referrerID)
	if err := s.users.Create(ctx, newUser); err != nil {
		// Conflict here means the invitee already has an account:
		// re-attribution and replay farming stop at this line.
		return nil, err
	}

	err = s.users.Mutate(ctx, referrerID, func(u *usermodels.User) (bool, error) {
		for _, id := range u.ReferredUsers {
			if id == invitee.ID {
				return false, nil
			}
		}
		u.ReferredUsers = append(u.ReferredUsers, invitee.ID)
		u.Referrals = int64(len(u.ReferredUsers))
		u.Balance += task.Reward
		if u.Tasks == nil {
			u.Tasks = map[string]bool{}
		}
		u.Tasks[task.ID] = true
		return true, nil
	})
	if err != nil {
		// The invitee document is already committed; surface the credit
		// failure so the caller retries the credit, not the creation.
		log.Error().Err(err).
			Int64("referrer_id", referrerID).
			Int64("invitee_id", invitee.ID).
			Msg("referrer credit failed after invitee creation")
		return nil, err
	}

	metrics.Referrals.Inc()
	log.Info().
		Int64("referrer_id", referrerID).
		Int64("invitee_id", invitee.ID).
		Int64("reward", task.Reward).
		Msg("referral attributed")

	if s.notifier != nil {
		text := fmt.Sprintf("🎉 <b>%s</b> joined with your invite! +%d STON", invitee.FirstName, task.Reward)
		if err := s.notifier.Enqueue(ctx, referrerID, text); err != nil {
			log.Warn().Err(err).Int64("chat_id", referrerID).Msg("notification enqueue failed")
		}
	}

	return newUser, nil
}
