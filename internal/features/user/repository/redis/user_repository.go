package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skyton-backend/internal/common/apperr"
	"skyton-backend/internal/features/user/models"
	"skyton-backend/internal/features/user/repository"
)

type userRepository struct {
	client redis.UniversalClient
}

func NewUserRepository(client redis.UniversalClient) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "marshal user")
	}

	ok, err := r.client.SetNX(ctx, userKey(user.ID), userJSON, 0).Result()
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "create user")
	}
	if !ok {
		return apperr.Newf(apperr.CodeConflict, "user %d already exists", user.ID)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	userJSON, err := r.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.Newf(apperr.CodeNotFound, "user %d not found", id)
		}
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "get user")
	}

	var user models.User
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "unmarshal user")
	}

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	userJSON, err := json.Marshal(user)
	if err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "marshal user")
	}
	if err := r.client.Set(ctx, userKey(user.ID), userJSON, 0).Err(); err != nil {
		return apperr.Wrap(err, apperr.CodeStoreError, "update user")
	}
	return nil
}

// Mutate implements the read-check-write cycle as one optimistic
// transaction: WATCH the user key, apply fn to the loaded document, write
// inside MULTI/EXEC. If another writer touches the key in between, EXEC
// fails and the caller gets a retryable StoreError instead of a silent
// double-apply.
func (r *userRepository) Mutate(ctx context.Context, id int64, fn repository.MutateFunc) error {
	key := userKey(id)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return apperr.Newf(apperr.CodeNotFound, "user %d not found", id)
		}
		if err != nil {
			return apperr.Wrap(err, apperr.CodeStoreError, "get user")
		}

		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			return apperr.Wrap(err, apperr.CodeStoreError, "unmarshal user")
		}

		dirty, err := fn(&user)
		if err != nil {
			return err
		}
		if !dirty {
			return nil
		}

		user.UpdatedAt = time.Now()
		out, err := json.Marshal(&user)
		if err != nil {
			return apperr.Wrap(err, apperr.CodeStoreError, "marshal user")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		return err
	}, key)

	if err == redis.TxFailedErr {
		return apperr.Wrapf(err, apperr.CodeStoreError, "concurrent update of user %d", id)
	}
	if err != nil {
		if apperr.CodeOf(err) != apperr.CodeInternal {
			return err
		}
		return apperr.Wrap(err, apperr.CodeStoreError, "mutate user")
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	iter := r.client.Scan(ctx, 0, "user:*", 0).Iterator()

	for iter.Next(ctx) {
		userJSON, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			continue
		}

		var user models.User
		if err := json.Unmarshal(userJSON, &user); err != nil {
			continue
		}

		users = append(users, &user)
	}
	if err := iter.Err(); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeStoreError, "scan users")
	}

	return users, nil
}
