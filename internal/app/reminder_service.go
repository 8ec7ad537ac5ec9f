// internal/app/reminder_service.go
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"repeat_reminder_bot/internal/domain/reminder"
	domainTelegram "repeat_reminder_bot/internal/domain/telegram"
	"repeat_reminder_bot/internal/infra/scheduler"
)

// Custom application-level errors for the reminder service
var ErrTargetUnavailable = fmt.Errorf("delivery target is unreachable")

// activeReminder is the in-memory state of one running schedule. It is
// created when scheduling succeeds and destroyed when the schedule is
// stopped or replaced; it is never persisted.
type activeReminder struct {
	rem       *reminder.Reminder
	timer     *scheduler.ReminderTimer
	recipient telebot.Recipient
}

// ReminderService owns the registry of active schedules and keeps it
// converged with the persisted records: a record exists in the repository
// iff a schedule is running here, outside the brief window of a request
// in flight or startup recovery.
type ReminderService struct {
	repo   reminder.Repository
	client domainTelegram.Client
	logger *logrus.Entry

	mu     sync.Mutex
	active map[int64]*activeReminder
}

func NewReminderService(
	repo reminder.Repository,
	client domainTelegram.Client,
	logger *logrus.Entry,
) *ReminderService {
	return &ReminderService{
		repo:   repo,
		client: client,
		logger: logger,
		active: make(map[int64]*activeReminder),
	}
}

// Schedule creates or replaces the user's single recurring reminder.
// Any existing schedule for the user is stopped first; validation failures
// after that point leave no new record and no armed timer.
func (s *ReminderService) Schedule(
	ctx context.Context,
	userID int64,
	target reminder.DeliveryTarget,
	startRaw string,
	intervalRaw string,
	message string,
) (*reminder.Reminder, error) {
	rem := &reminder.Reminder{
		UserID:    userID,
		Target:    target,
		Message:   message,
		StartTime: startRaw,
		Interval:  intervalRaw,
		CreatedAt: reminder.Now(),
	}
	if err := s.scheduleRecord(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// scheduleRecord arms the timers for a fully-populated record. Recovery
// reuses it directly so restored reminders behave exactly like fresh
// requests while keeping their original creation timestamp.
func (s *ReminderService) scheduleRecord(ctx context.Context, rem *reminder.Reminder) error {
	logCtx := s.logger.WithFields(logrus.Fields{
		"user_id": rem.UserID,
		"chat_id": rem.Target.ChatID,
	})

	// Scheduling is idempotent-replace, never additive.
	if _, err := s.Stop(ctx, rem.UserID); err != nil {
		return fmt.Errorf("failed to stop previous reminder: %w", err)
	}

	interval, err := reminder.ParseInterval(rem.Interval)
	if err != nil {
		return err
	}
	start, err := reminder.ParseStartTime(rem.StartTime)
	if err != nil {
		return err
	}

	recipient, err := s.client.Resolve(rem.Target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTargetUnavailable, err)
	}

	entry := &activeReminder{rem: rem, recipient: recipient}
	cronSpec := reminder.IntervalToCron(interval.Duration)
	timer, err := scheduler.NewReminderTimer(cronSpec, reminder.Location(), func() {
		s.fire(entry)
	})
	if err != nil {
		return fmt.Errorf("failed to build recurring timer: %w", err)
	}
	entry.timer = timer

	if err := s.repo.Save(ctx, rem); err != nil {
		return fmt.Errorf("failed to persist reminder: %w", err)
	}

	now := reminder.Now()
	s.mu.Lock()
	s.active[rem.UserID] = entry
	if start.After(now) {
		// One delivery at the start instant, then the recurring cadence.
		timer.StartAfter(start.Sub(now), func() { s.onStartElapsed(entry) })
		logCtx.WithField("start_in", start.Sub(now).String()).Info("Reminder scheduled; waiting for start time")
	} else {
		// Past or immediate start: no delivery until the next periodic boundary.
		timer.StartRecurring()
		logCtx.WithField("cron_spec", cronSpec).Info("Reminder scheduled; recurring timer started")
	}
	s.mu.Unlock()

	return nil
}

// Stop cancels the user's pending delay timer and recurring timer, removes
// the in-memory entry and the persisted record. It reports whether an
// active schedule existed; without one the store is left untouched.
func (s *ReminderService) Stop(ctx context.Context, userID int64) (bool, error) {
	s.mu.Lock()
	entry, ok := s.active[userID]
	if ok {
		entry.timer.Stop()
		delete(s.active, userID)
	}
	s.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := s.repo.Remove(ctx, userID); err != nil {
		return true, fmt.Errorf("failed to remove persisted reminder: %w", err)
	}
	s.logger.WithField("user_id", userID).Info("Reminder stopped")
	return true, nil
}

// Get returns the user's persisted reminder record. It is repository-backed
// and does not require a running in-memory schedule.
func (s *ReminderService) Get(ctx context.Context, userID int64) (*reminder.Reminder, error) {
	return s.repo.Get(ctx, userID)
}

// RestoreAll re-arms a schedule for every persisted record on startup.
// A record that fails to re-arm is removed and the rest continue; recovery
// is never fatal.
func (s *ReminderService) RestoreAll(ctx context.Context) error {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load persisted reminders: %w", err)
	}

	s.logger.WithField("count", len(stored)).Info("Restoring persisted reminders")
	for userID, rem := range stored {
		logCtx := s.logger.WithField("user_id", userID)
		if err := s.scheduleRecord(ctx, rem); err != nil {
			logCtx.WithError(err).Error("Failed to restore reminder; dropping record")
			if rmErr := s.repo.Remove(ctx, userID); rmErr != nil {
				logCtx.WithError(rmErr).Error("Failed to remove unrecoverable reminder record")
			}
			continue
		}
		logCtx.Info("Reminder restored")
	}
	return nil
}

// Shutdown cancels every in-memory timer without touching the store, so
// persisted records survive for recovery on the next start.
func (s *ReminderService) Shutdown() {
	s.mu.Lock()
	for userID, entry := range s.active {
		entry.timer.Stop()
		delete(s.active, userID)
	}
	s.mu.Unlock()
	s.logger.Info("All reminder timers stopped")
}

// fire handles one recurring tick. The ownership check makes a tick from a
// replaced or stopped schedule a no-op.
func (s *ReminderService) fire(entry *activeReminder) {
	s.mu.Lock()
	current := s.active[entry.rem.UserID] == entry
	s.mu.Unlock()
	if !current {
		return
	}
	s.deliver(entry)
}

// onStartElapsed runs when the one-shot delay timer fires: deliver once at
// the start instant, then begin the recurring cadence.
func (s *ReminderService) onStartElapsed(entry *activeReminder) {
	s.mu.Lock()
	if s.active[entry.rem.UserID] != entry {
		s.mu.Unlock()
		return
	}
	entry.timer.ClearDelay()
	s.mu.Unlock()

	s.deliver(entry)

	s.mu.Lock()
	if s.active[entry.rem.UserID] == entry {
		entry.timer.StartRecurring()
	}
	s.mu.Unlock()
}

// deliver renders the template against the current instant and sends it.
// A delivery failure is logged but never stops the schedule; the next
// natural tick will try again.
func (s *ReminderService) deliver(entry *activeReminder) {
	text := reminder.Render(entry.rem.Message, reminder.Now())
	if err := s.client.SendMessage(entry.recipient, text, nil); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": entry.rem.UserID,
			"chat_id": entry.rem.Target.ChatID,
		}).Error("Failed to deliver reminder message")
	}
}
