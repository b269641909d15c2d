package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/features/withdrawal/models"
	"skyton-backend/internal/features/withdrawal/repository"
)

type withdrawalRepository struct {
	client redis.UniversalClient
}

func NewWithdrawalRepository(client redis.UniversalClient) repository.WithdrawalRepository {
	return &withdrawalRepository{
		client: client,
	}
}

func withdrawalKey(id string) string {
	return fmt.Sprintf("withdrawal:%s", id)
}

func (r *withdrawalRepository) Create(ctx context.Context, w *models.Withdrawal) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "marshal withdrawal")
	}

	ok, err := r.client.SetNX(ctx, withdrawalKey(w.ID), raw, 0).Result()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "create withdrawal")
	}
	if !ok {
		return apperr.Newf(apperr.CodeConflict, "withdrawal %s already exists", w.ID)
	}
	return nil
}

func (r *withdrawalRepository) GetByID(ctx context.Context, id string) (*models.Withdrawal, error) {
	raw, err := r.client.Get(ctx, withdrawalKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.Newf(apperr.CodeNotFound, "withdrawal %s not found", id)
		}
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "get withdrawal")
	}

	var w models.Withdrawal
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "unmarshal withdrawal")
	}

	return &w, nil
}

func (r *withdrawalRepository) Mutate(ctx context.Context, id string, fn repository.MutateFunc) error {
	key := withdrawalKey(id)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return apperr.Newf(apperr.CodeNotFound, "withdrawal %s not found", id)
		}
		if err != nil {
			return apperr.Wrap(err, apperr.CodeStoreError, "get withdrawal")
		}

		var w models.Withdrawal
		if err := json.Unmarshal(raw, &w); err != nil {
			return apperr.Wrap(err, apperr.CodeStoreError, "unmarshal withdrawal")
		}

		dirty, err := fn(&w)
		if err != nil {
			return err
		}
		if !dirty {
			return nil
		}

		out, err := json.Marshal(&w)
		if err != nil {
			return apperr.Wrap(err, apperr.CodeStoreError, "marshal withdrawal")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		return err
	}, key)

	if err == redis.TxFailedErr {
		return apperr.Wrapf(err, apperr.CodeStoreError, "concurrent update of withdrawal %s", id)
	}
	if err != nil {
		if apperr.CodeOf(err) != apperr.CodeInternal {
			return err
		}
		return apperr.Wrap(err, apperr.CodeStoreError, "mutate withdrawal")
	}
	return nil
}

func (r *withdrawalRepository) list(ctx context.Context, match func(*models.Withdrawal) bool) ([]*models.Withdrawal, error) {
	var out []*models.Withdrawal
	iter := r.client.Scan(ctx, 0, "withdrawal:*", 0).Iterator()

	for iter.Next(ctx) {
		raw, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}

		var w models.Withdrawal
		if err := json.Unmarshal(raw, &w); err != nil {
			continue
		}

		if match(&w) {
			out = append(out, &w)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "scan withdrawals")
	}

	return out, nil
}

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Withdrawal, error) {
	return r.list(ctx, func(w *models.Withdrawal) bool { return w.UserID == userID })
}

func (r *withdrawalRepository) ListByStatus(ctx context.Context, status models.Status) ([]*models.Withdrawal, error) {
	return r.list(ctx, func(w *models.Withdrawal) bool { return w.Status == status })
}
