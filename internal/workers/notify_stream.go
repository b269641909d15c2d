package workers

import (
	"context"
	"strconv"
	"time"

	go_redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"skyton-backend/internal/notify"
	redisp "skyton-backend/internal/platform/redis"
)

const consumerGroup = "skyton_backend_consumers"
const consumerName = "skyton_notify_worker_1"

// Sender delivers one chat message. Implemented by platform/telegram.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// NotifyStreamWorker drains the notify stream and delivers messages through
// the bot API. A failed send is logged and acknowledged anyway: chat
// notifications are at-most-once and never block or revert core state.
type NotifyStreamWorker struct {
	rdb    *redisp.Client
	sender Sender
}

func NewNotifyStreamWorker(rdb *redisp.Client, sender Sender) *NotifyStreamWorker {
	return &NotifyStreamWorker{
		rdb:    rdb,
		sender: sender,
	}
}

// Start begins listening to the Redis stream for outbound messages.
func (w *NotifyStreamWorker) Start(ctx context.Context) {
	// Ensure consumer group exists
	err := w.rdb.XGroupCreateMkStream(ctx, notify.StreamKey, consumerGroup, "$").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		log.Error().Err(err).Msg("creating notify consumer group")
	}

	log.Info().Msg("Starting notify stream worker")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Stopping notify stream worker")
			return
		default:
			entries, err := w.rdb.XReadGroup(ctx, &go_redis.XReadGroupArgs{
				Group:    consumerGroup,
				Consumer: consumerName,
				Streams:  []string{notify.StreamKey, ">"},
				Count:    10,
				Block:    5 * time.Second,
			}).Result()

			if err != nil {
				if err != go_redis.Nil && ctx.Err() == nil {
					log.Error().Err(err).Msg("reading notify stream")
					time.Sleep(time.Second) // backoff on error
				}
				continue
			}

			for _, stream := range entries {
				for _, msg := range stream.Messages {
					w.processMessage(ctx, msg.Values)
					w.rdb.XAck(ctx, notify.StreamKey, consumerGroup, msg.ID)
				}
			}
		}
	}
}

func (w *NotifyStreamWorker) processMessage(ctx context.Context, values map[string]interface{}) {
	chatIDStr, ok := values["chat_id"].(string)
	if !ok {
		log.Warn().Interface("values", values).Msg("notify event without chat_id")
		return
	}
	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		log.Warn().Str("chat_id", chatIDStr).Msg("notify event with bad chat_id")
		return
	}
	text, _ := values["text"].(string)
	if text == "" {
		return
	}

	if err := w.sender.SendMessage(ctx, chatID, text); err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Msg("notify delivery failed")
	}
}
