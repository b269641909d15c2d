package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"skyton-backend/internal/common/apperr"
)

// Client talks to the Telegram Bot API on behalf of the platform bot.
type Client struct {
	api *tgbotapi.BotAPI
}

func NewClient(token string, debug bool) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug
	log.Info().Str("bot", api.Self.UserName).Msg("Telegram bot authorized")
	return &Client{api: api}, nil
}

// SendMessage delivers a plain HTML-formatted message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := c.api.Send(msg); err != nil {
		return apperr.Wrapf(err, apperr.CodeStoreError, "send message to chat %d", chatID)
	}
	return nil
}

// IsChannelMember reports whether the user belongs to the channel. A
// provider failure is distinct from a "not a member" result: the former is
// retryable, the latter is a definitive no.
func (c *Client) IsChannelMember(ctx context.Context, userID int64, channel string) (bool, error) {
	handle := "@" + strings.TrimPrefix(strings.TrimSpace(channel), "@")
	member, err := c.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: handle,
			UserID:             userID,
		},
	})
	if err != nil {
		return false, apperr.Wrapf(err, apperr.CodeStoreError, "get chat member %s", handle)
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return true, nil
	default:
		return false, nil
	}
}
