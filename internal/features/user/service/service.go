package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/common/validation"
	"skyton-backend/internal/features/user/models"
	"skyton-backend/internal/features/user/repository"
)

type UserService interface {
	// GetOrCreateUser resolves the launching user, creating the document
	// with the default snapshot on first launch and refreshing identity
	// fields when Telegram reports them changed.
	GetOrCreateUser(ctx context.Context, identity models.Identity) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	SetWallet(ctx context.Context, id int64, wallet string) error
	SetBanned(ctx context.Context, id int64, banned bool) error
	SpendEnergy(ctx context.Context, id int64, amount int64) error
	AddEnergy(ctx context.Context, id int64, amount int64) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) GetOrCreateUser(ctx context.Context, identity models.Identity) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, identity.ID)
	if err == nil {
		if user.Username != identity.Username ||
			user.FirstName != identity.FirstName ||
			user.LastName != identity.LastName ||
			user.PhotoURL != identity.PhotoURL {
			user.Username = identity.Username
			user.FirstName = identity.FirstName
			user.LastName = identity.LastName
			user.PhotoURL = identity.PhotoURL
			if err := s.repo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
		return user, nil
	}
	if !apperr.Is(err, apperr.CodeNotFound) {
		return nil, err
	}

	newUser := models.New(identity, nil)
	if err := s.repo.Create(ctx, newUser); err != nil {
		// Lost a creation race against another launch or a referral
		// attribution; the document exists now, read it back.
		if apperr.Is(err, apperr.CodeConflict) {
			return s.repo.GetByID(ctx, identity.ID)
		}
		return nil, err
	}

	log.Info().Int64("user_id", newUser.ID).Msg("user created")
	return newUser, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) SetWallet(ctx context.Context, id int64, wallet string) error {
	if err := validation.ValidateWalletAddress(wallet); err != nil {
		return apperr.Wrap(err, apperr.CodeInvalidInput, "wallet address")
	}

	return s.repo.Mutate(ctx, id, func(u *models.User) (bool, error) {
		if u.Wallet != nil && *u.Wallet == wallet {
			return false, nil
		}
		u.Wallet = &wallet
		return true, nil
	})
}

func (s *userService) SetBanned(ctx context.Context, id int64, banned bool) error {
	return s.repo.Mutate(ctx, id, func(u *models.User) (bool, error) {
		if u.IsBanned == banned {
			return false, nil
		}
		u.IsBanned = banned
		return true, nil
	})
}

// SpendEnergy debits the energy pool, failing with Conflict when the pool
// cannot cover the amount. Mini-game sessions call this per run.
func (s *userService) SpendEnergy(ctx context.Context, id int64, amount int64) error {
	if amount <= 0 {
		return apperr.New(apperr.CodeInvalidInput, "energy amount must be positive")
	}
	return s.repo.Mutate(ctx, id, func(u *models.User) (bool, error) {
		if u.Energy < amount {
			return false, apperr.Newf(apperr.CodeConflict, "not enough energy: have %d, need %d", u.Energy, amount)
		}
		u.Energy -= amount
		return true, nil
	})
}

// AddEnergy refills the pool, clamped to MaxEnergy.
func (s *userService) AddEnergy(ctx context.Context, id int64, amount int64) error {
	if amount <= 0 {
		return apperr.New(apperr.CodeInvalidInput, "energy amount must be positive")
	}
	return s.repo.Mutate(ctx, id, func(u *models.User) (bool, error) {
		if u.Energy >= models.MaxEnergy {
			return false, nil
		}
		u.Energy += amount
		if u.Energy > models.MaxEnergy {
			u.Energy = models.MaxEnergy
		}
		return true, nil
	})
}
