// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RegisterBotCommands wires the /start and /help commands.
func RegisterBotCommands(b *telebot.Bot, baseLogger *logrus.Entry) {
	startHelpLogger := baseLogger.WithField("handler_group", "start_help")

	b.Handle("/start", func(c telebot.Context) error {
		logCtx := startHelpLogger.WithField("command", "/start").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /start command")

		return c.Send("안녕하세요! 반복 알림 봇입니다.\n" +
			"원하는 시간에 시작해서 일정 간격으로 반복되는 알림을 설정할 수 있습니다.\n" +
			"자세한 사용법은 /help 를 입력해주세요.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		logCtx := startHelpLogger.WithField("command", "/help").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing /help command")

		var helpText strings.Builder
		helpText.WriteString("사용 가능한 명령어:\n\n")
		helpText.WriteString("`/remind <시작시간> <반복간격> <메시지>`\n")
		helpText.WriteString(" - 반복 알림을 설정합니다. 기존 알림이 있으면 교체됩니다.\n")
		helpText.WriteString(" - 시작시간 예: 2025-12-03T10:00 (한국 시간 기준)\n")
		helpText.WriteString(" - 반복간격 예: 10m, 2h, 1d\n")
		helpText.WriteString(" - 메시지에 ${날짜}, ${시간}, ${요일} 을 쓰면 전송 시점의 값으로 바뀝니다.\n\n")
		helpText.WriteString("`/remind_off`\n - 설정된 반복 알림을 끕니다.\n\n")
		helpText.WriteString("`/remind_info`\n - 현재 설정된 알림을 확인합니다.\n\n")
		helpText.WriteString("`/help`\n - 이 도움말을 표시합니다.")
		return c.Send(helpText.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})
}
