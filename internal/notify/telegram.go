package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/sirupsen/logrus"
)

// MessageSender is the part of the Telegram bot API used for alerts
type MessageSender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// TelegramNotifier sends alerts to a fixed set of Telegram chats
type TelegramNotifier struct {
	sender  MessageSender
	chatIDs []int64
	log     *logrus.Logger
}

// NewTelegramNotifier creates a notifier backed by a Telegram bot
func NewTelegramNotifier(token string, chatIDs []int64, log *logrus.Logger) (*TelegramNotifier, error) {
	if token == "" {
		return nil, errors.New("telegram bot token is required")
	}
	if len(chatIDs) == 0 {
		return nil, errors.New("at least one telegram chat ID is required")
	}

	b, err := bot.New(token, bot.WithSkipGetMe())
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return NewTelegramNotifierWithSender(b, chatIDs, log), nil
}

// NewTelegramNotifierWithSender creates a notifier around an existing sender
func NewTelegramNotifierWithSender(sender MessageSender, chatIDs []int64, log *logrus.Logger) *TelegramNotifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TelegramNotifier{
		sender:  sender,
		chatIDs: chatIDs,
		log:     log,
	}
}

// NotifyOffline sends the alert to every configured chat. Delivery continues
// after a failed chat; the failures are joined into the returned error.
func (n *TelegramNotifier) NotifyOffline(ctx context.Context, alert OfflineAlert) error {
	text := alert.Message()

	var errs []error
	for _, chatID := range n.chatIDs {
		params := &bot.SendMessageParams{
			ChatID: chatID,
			Text:   text,
		}
		if _, err := n.sender.SendMessage(ctx, params); err != nil {
			n.log.WithError(err).WithField("chat_id", chatID).Error("failed to send offline alert")
			errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
		}
	}

	return errors.Join(errs...)
}

// New returns a Telegram notifier when token and chat IDs are configured and
// a log notifier otherwise
func New(token string, chatIDs []int64, log *logrus.Logger) Notifier {
	if token == "" || len(chatIDs) == 0 {
		return NewLogNotifier(log)
	}

	n, err := NewTelegramNotifier(token, chatIDs, log)
	if err != nil {
		if log == nil {
			log = logrus.StandardLogger()
		}
		log.WithError(err).Warn("telegram alerts disabled, falling back to log notifier")
		return NewLogNotifier(log)
	}
	return n
}
