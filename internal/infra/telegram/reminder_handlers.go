package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"repeat_reminder_bot/internal/app"
	"repeat_reminder_bot/internal/domain/reminder"
	idb "repeat_reminder_bot/internal/infra/database"
)

const remindUsage = "사용법: /remind <시작시간> <반복간격> <메시지>\n" +
	"예: /remind 2025-12-03T10:00 10m 물 마실 시간! (${날짜}, ${시간}, ${요일} 사용 가능)"

// RegisterReminderHandlers registers the reminder commands: create-or-replace,
// stop and describe.
func RegisterReminderHandlers(
	ctx context.Context,
	b *telebot.Bot,
	reminderService *app.ReminderService,
	baseLogger *logrus.Entry,
) {
	b.Handle("/remind", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/remind",
			"sender_id": c.Sender().ID,
			"chat_id":   c.Chat().ID,
		})
		handlerLogger.Info("Command received")

		args := c.Args()
		// Expected format: /remind <start-time> <interval> <message...>
		if len(args) < 3 {
			handlerLogger.WithField("args_count", len(args)).Warn("Invalid command format")
			return c.Send(remindUsage)
		}

		startRaw := args[0]
		intervalRaw := args[1]
		message := strings.Join(args[2:], " ")

		target := reminder.DeliveryTarget{ChatID: c.Chat().ID}
		if c.Message() != nil {
			target.ThreadID = c.Message().ThreadID
		}

		rem, err := reminderService.Schedule(ctx, c.Sender().ID, target, startRaw, intervalRaw, message)
		if err != nil {
			logWithError := handlerLogger.WithError(err)
			switch {
			case errors.Is(err, reminder.ErrInvalidInterval):
				logWithError.Warn("Invalid interval format")
				return c.Send("❌ 알림 설정 실패: 잘못된 반복 간격 형식입니다. (예: 10m, 2h, 1d)")
			case errors.Is(err, reminder.ErrInvalidStartTime):
				logWithError.Warn("Invalid start time format")
				return c.Send("❌ 알림 설정 실패: 잘못된 시간 형식입니다. (예: 2025-12-03T10:00)")
			case errors.Is(err, app.ErrTargetUnavailable):
				logWithError.Warn("Delivery target unreachable")
				return c.Send("❌ 알림 설정 실패: 채널에 접근할 수 없습니다. 봇 권한을 확인해주세요.")
			default:
				logWithError.Error("Failed to schedule reminder")
				return c.Send("❌ 알림 설정 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
			}
		}

		handlerLogger.WithFields(logrus.Fields{
			"start_time": rem.StartTime,
			"interval":   rem.Interval,
		}).Info("Reminder scheduled successfully")

		return c.Send(fmt.Sprintf(
			"✅ 반복 알림이 설정되었습니다!\n📅 시작 시간: %s\n🔁 반복 간격: %s\n💬 메시지: %s",
			rem.StartTime, rem.Interval, rem.Message,
		))
	})

	b.Handle("/remind_off", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/remind_off",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		stopped, err := reminderService.Stop(ctx, c.Sender().ID)
		if err != nil {
			handlerLogger.WithError(err).Error("Failed to stop reminder")
			return c.Send("❌ 알림 해제 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
		}
		if !stopped {
			handlerLogger.Info("No active reminder to stop")
			return c.Send("❌ 설정된 알림이 없습니다.")
		}

		handlerLogger.Info("Reminder stopped")
		return c.Send("✅ 알림이 해제되었습니다.")
	})

	b.Handle("/remind_info", func(c telebot.Context) error {
		handlerLogger := baseLogger.WithFields(logrus.Fields{
			"handler":   "/remind_info",
			"sender_id": c.Sender().ID,
		})
		handlerLogger.Info("Command received")

		rem, err := reminderService.Get(ctx, c.Sender().ID)
		if err != nil {
			if errors.Is(err, idb.ErrReminderNotFound) {
				return c.Send("❌ 설정된 알림이 없습니다.")
			}
			handlerLogger.WithError(err).Error("Failed to look up reminder")
			return c.Send("❌ 알림 조회 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
		}

		return c.Send(fmt.Sprintf(
			"📋 현재 설정된 알림:\n📅 시작 시간: %s\n🔁 반복 간격: %s\n💬 메시지: %s\n📆 생성일: %s",
			rem.StartTime, rem.Interval, rem.Message,
			rem.CreatedAt.In(reminder.Location()).Format("2006-01-02 15:04"),
		))
	})
}
