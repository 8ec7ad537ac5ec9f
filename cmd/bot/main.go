package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"repeat_reminder_bot/internal/app"
	"repeat_reminder_bot/internal/infra/config"
	idb "repeat_reminder_bot/internal/infra/database"
	"repeat_reminder_bot/internal/infra/logger"
	itg "repeat_reminder_bot/internal/infra/telegram"
)

func main() {
	fmt.Println("Repeat Reminder Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Get().WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Database: %s",
		cfg.LogLevel, cfg.Environment, cfg.DatabasePath)

	// Initialize Database Connection
	db, err := idb.NewSQLiteConnection(cfg.DatabasePath)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not open database: %v", err)
	}
	defer db.Close()
	mainLogger.Info("Database connection established successfully.")

	// Initialize Repository
	reminderRepo := idb.NewSQLiteReminderRepository(db)
	mainLogger.Info("Reminder repository initialized.")

	// Initialize Telegram Bot
	pref := telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) { // Global error handler
			entry := logger.Get().WithError(err)
			if c != nil && c.Sender() != nil && c.Chat() != nil {
				entry = entry.WithFields(logrus.Fields{
					"message":   c.Text(),
					"sender_id": c.Sender().ID,
					"chat_id":   c.Chat().ID,
				})
			}
			entry.Error("Unhandled telebot error")
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}

	// Initialize ReminderService
	telegramClient := itg.NewTelebotAdapter(bot)
	serviceLogger := logger.Get().WithField("component", "reminder_service")
	reminderService := app.NewReminderService(reminderRepo, telegramClient, serviceLogger)
	mainLogger.Info("Reminder service initialized.")

	ctx := context.Background()

	// Restore persisted reminders before accepting new commands.
	if err := reminderService.RestoreAll(ctx); err != nil {
		mainLogger.WithError(err).Error("Reminder recovery failed")
	}
	mainLogger.Info("Reminder recovery complete.")

	// Register Handlers
	handlerLogger := logger.Get().WithField("component", "telegram_handlers")
	itg.RegisterReminderHandlers(ctx, bot, reminderService, handlerLogger)
	itg.RegisterBotCommands(bot, handlerLogger)
	mainLogger.Info("Command handlers registered.")

	mainLogger.Info("Application setup complete. Bot is starting...")

	// Start bot in a goroutine so it doesn't block graceful shutdown handling
	go bot.Start()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	reminderService.Shutdown() // Stops timers only; records stay for recovery
	bot.Stop()
	// db.Close() is handled by defer
	mainLogger.Info("Application shut down gracefully.")
}
