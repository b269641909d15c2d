package notify

import (
	"context"

	"github.com/redis/go-redis/v9"

	redisp "skyton-backend/internal/platform/redis"
)

// StreamKey is the Redis stream carrying outbound bot messages.
const StreamKey = "notify:events"

// Queue enqueues outbound {chat_id, text} messages for the stream worker.
// Delivery is best-effort: core state changes never wait on, or roll back
// for, a notification.
type Queue struct {
	rdb *redisp.Client
}

func NewQueue(rdb *redisp.Client) *Queue {
	return &Queue{rdb: rdb}
}

func (q *Queue) Enqueue(ctx context.Context, chatID int64, text string) error {
	return q.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey,
		Values: map[string]interface{}{
			"chat_id": chatID,
			"text":    text,
		},
	}).Err()
}
