package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/common/validation"
	userrepo "skyton-backend/internal/features/user/repository"
	"skyton-backend/internal/features/withdrawal/models"
	"skyton-backend/internal/features/withdrawal/repository"
)

type WithdrawalService interface {
	// Request files a pending withdrawal. The user's balance is only
	// snapshotted here; the debit happens at admin approval.
	Request(ctx context.Context, userID int64, amount int64, wallet string) (*models.Withdrawal, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Withdrawal, error)
}

type withdrawalService struct {
	withdrawals repository.WithdrawalRepository
	users       userrepo.UserRepository
}

func NewWithdrawalService(withdrawals repository.WithdrawalRepository, users userrepo.UserRepository) WithdrawalService {
	return &withdrawalService{
		withdrawals: withdrawals,
		users:       users,
	}
}

func (s *withdrawalService) Request(ctx context.Context, userID int64, amount int64, wallet string) (*models.Withdrawal, error) {
	if amount <= 0 {
		return nil, apperr.New(apperr.CodeInvalidInput, "withdrawal amount must be positive")
	}
	if err := validation.ValidateWalletAddress(wallet); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInvalidInput, "wallet address")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Balance < amount {
		return nil, apperr.Newf(apperr.CodeConflict, "insufficient balance: have %d, requested %d", user.Balance, amount)
	}

	w := &models.Withdrawal{
		ID:            uuid.New().String(),
		UserID:        userID,
		Amount:        amount,
		WalletAddress: wallet,
		Status:        models.StatusPending,
		UserBalance:   user.Balance,
		CreatedAt:     time.Now(),
	}

	if err := s.withdrawals.Create(ctx, w); err != nil {
		return nil, err
	}

	log.Info().
		Str("withdrawal_id", w.ID).
		Int64("user_id", userID).
		Int64("amount", amount).
		Msg("withdrawal requested")
	return w, nil
}

func (s *withdrawalService) ListByUser(ctx context.Context, userID int64) ([]*models.Withdrawal, error) {
	return s.withdrawals.ListByUser(ctx, userID)
}
