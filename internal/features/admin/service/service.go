package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"skyton-backend/internal/common/apperr"
	adminmodels "skyton-backend/internal/features/admin/models"
	ledgersvc "skyton-backend/internal/features/ledger/service"
	usermodels "skyton-backend/internal/features/user/models"
	userrepo "skyton-backend/internal/features/user/repository"
	wmodels "skyton-backend/internal/features/withdrawal/models"
	wrepo "skyton-backend/internal/features/withdrawal/repository"
	"skyton-backend/internal/metrics"
)

type Notifier interface {
	Enqueue(ctx context.Context, chatID int64, text string) error
}

// AdminService resolves the review queues: manual task verifications and
// withdrawal requests.
type AdminService interface {
	// ListPendingVerifications flattens every user's pending set into one
	// row per (user, task). Full-collection scan; fine at this scale.
	ListPendingVerifications(ctx context.Context) ([]*adminmodels.PendingVerification, error)
	ApproveVerification(ctx context.Context, userID int64, taskID string) error
	RejectVerification(ctx context.Context, userID int64, taskID string) error

	ListWithdrawals(ctx context.Context, status wmodels.Status) ([]*wmodels.Withdrawal, error)
	// ApproveWithdrawal claims the pending request, then debits the
	// user's live balance. Insufficient funds at approval time flip the
	// request to rejected instead of leaving it claimable again.
	ApproveWithdrawal(ctx context.Context, id string) error
	RejectWithdrawal(ctx context.Context, id string) error
}

type adminService struct {
	users       userrepo.UserRepository
	ledger      ledgersvc.LedgerService
	withdrawals wrepo.WithdrawalRepository
	notifier    Notifier
}

func NewAdminService(
	users userrepo.UserRepository,
	ledger ledgersvc.LedgerService,
	withdrawals wrepo.WithdrawalRepository,
	notifier Notifier,
) AdminService {
	return &adminService{
		users:       users,
		ledger:      ledger,
		withdrawals: withdrawals,
		notifier:    notifier,
	}
}

func (s *adminService) ListPendingVerifications(ctx context.Context) ([]*adminmodels.PendingVerification, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []*adminmodels.PendingVerification
	for _, u := range users {
		for taskID, snap := range u.Pending {
			out = append(out, &adminmodels.PendingVerification{
				UserID:      u.ID,
				Username:    u.Username,
				TaskID:      taskID,
				TaskTitle:   snap.Title,
				TaskTarget:  snap.Target,
				Reward:      snap.Reward,
				RequestedAt: snap.RequestedAt,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RequestedAt.Before(out[j].RequestedAt)
	})
	return out, nil
}

func (s *adminService) ApproveVerification(ctx context.Context, userID int64, taskID string) error {
	// Same completion primitive the auto path uses.
	return s.ledger.CompleteTask(ctx, userID, taskID)
}

func (s *adminService) RejectVerification(ctx context.Context, userID int64, taskID string) error {
	if err := s.ledger.RejectManualVerification(ctx, userID, taskID); err != nil {
		return err
	}
	s.notify(ctx, userID, "❌ Your task verification was rejected. You can submit it again.")
	return nil
}

func (s *adminService) ListWithdrawals(ctx context.Context, status wmodels.Status) ([]*wmodels.Withdrawal, error) {
	return s.withdrawals.ListByStatus(ctx, status)
}

func (s *adminService) ApproveWithdrawal(ctx context.Context, id string) error {
	var amount int64
	var userID int64

	// Claim first: the pending->approved transition is the terminality
	// guard, so two admins cannot both debit.
	err := s.withdrawals.Mutate(ctx, id, func(w *wmodels.Withdrawal) (bool, error) {
		if w.Status != wmodels.StatusPending {
			return false, apperr.Newf(apperr.CodeConflict, "withdrawal %s already %s", id, w.Status)
		}
		now := time.Now()
		w.Status = wmodels.StatusApproved
		w.ApprovedAt = &now
		amount = w.Amount
		userID = w.UserID
		return true, nil
	})
	if err != nil {
		return err
	}

	err = s.users.Mutate(ctx, userID, func(u *usermodels.User) (bool, error) {
		if u.Balance < amount {
			return false, apperr.Newf(apperr.CodeConflict, "insufficient balance: have %d, withdrawal %d", u.Balance, amount)
		}
		u.Balance -= amount
		return true, nil
	})
	if err != nil {
		// Funds moved since the request: release the claim as rejected so
		// the ledger never goes negative.
		revertErr := s.withdrawals.Mutate(ctx, id, func(w *wmodels.Withdrawal) (bool, error) {
			now := time.Now()
			w.Status = wmodels.StatusRejected
			w.ApprovedAt = nil
			w.RejectedAt = &now
			return true, nil
		})
		if revertErr != nil {
			log.Error().Err(revertErr).Str("withdrawal_id", id).Msg("failed to revert claimed withdrawal")
		}
		return err
	}

	metrics.WithdrawalsResolved.WithLabelValues("approved").Inc()
	log.Info().Str("withdrawal_id", id).Int64("user_id", userID).Int64("amount", amount).Msg("withdrawal approved")
	s.notify(ctx, userID, fmt.Sprintf("💸 Your withdrawal of %d STON was approved.", amount))
	return nil
}

func (s *adminService) RejectWithdrawal(ctx context.Context, id string) error {
	var userID int64
	var amount int64

	err := s.withdrawals.Mutate(ctx, id, func(w *wmodels.Withdrawal) (bool, error) {
		if w.Status != wmodels.StatusPending {
			return false, apperr.Newf(apperr.CodeConflict, "withdrawal %s already %s", id, w.Status)
		}
		now := time.Now()
		w.Status = wmodels.StatusRejected
		w.RejectedAt = &now
		userID = w.UserID
		amount = w.Amount
		return true, nil
	})
	if err != nil {
		return err
	}

	metrics.WithdrawalsResolved.WithLabelValues("rejected").Inc()
	log.Info().Str("withdrawal_id", id).Int64("user_id", userID).Msg("withdrawal rejected")
	s.notify(ctx, userID, fmt.Sprintf("❌ Your withdrawal of %d STON was rejected.", amount))
	return nil
}

func (s *adminService) notify(ctx context.Context, chatID int64, text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Enqueue(ctx, chatID, text); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("notification enqueue failed")
	}
}
