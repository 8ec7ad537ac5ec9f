// internal/domain/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"

	"repeat_reminder_bot/internal/domain/reminder"
)

// Client defines an interface for resolving delivery targets and sending
// rendered reminder messages via a Telegram bot. This helps in decoupling
// the application logic from the specific bot library.
type Client interface {
	// Resolve verifies that the target is currently reachable and returns
	// an opaque recipient handle usable with SendMessage.
	Resolve(target reminder.DeliveryTarget) (telebot.Recipient, error)
	SendMessage(to telebot.Recipient, text string, options *telebot.SendOptions) error
}
