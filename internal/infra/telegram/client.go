// internal/infra/telegram/client.go
package telegram

import (
	"fmt"

	"gopkg.in/telebot.v3"

	"repeat_reminder_bot/internal/domain/reminder"
)

// TelebotAdapter implements the domain Client interface using the
// gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// resolvedChat carries the forum topic thread along with the chat so
// SendMessage can route messages into the right topic.
type resolvedChat struct {
	chat     *telebot.Chat
	threadID int
}

func (rc *resolvedChat) Recipient() string {
	return rc.chat.Recipient()
}

// Resolve fetches the chat from Telegram to confirm the bot can reach it.
// An unreachable or unknown chat yields an error and no handle.
func (tba *TelebotAdapter) Resolve(target reminder.DeliveryTarget) (telebot.Recipient, error) {
	chat, err := tba.bot.ChatByID(target.ChatID)
	if err != nil {
		return nil, fmt.Errorf("chat %d is not reachable: %w", target.ChatID, err)
	}
	return &resolvedChat{chat: chat, threadID: target.ThreadID}, nil
}

// SendMessage sends a text message to a previously resolved recipient.
func (tba *TelebotAdapter) SendMessage(to telebot.Recipient, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}
	if rc, ok := to.(*resolvedChat); ok && rc.threadID != 0 {
		options.ThreadID = rc.threadID
	}

	_, err := tba.bot.Send(to, text, options)
	return err
}
