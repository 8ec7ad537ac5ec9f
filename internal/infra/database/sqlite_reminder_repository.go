package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"repeat_reminder_bot/internal/domain/reminder"
)

// Custom errors
var ErrReminderNotFound = fmt.Errorf("reminder not found")

// SQLiteReminderRepository persists one Reminder per user as a JSON document
// keyed by user ID. Field names are preserved in the serialized form so old
// records stay readable after the struct grows.
type SQLiteReminderRepository struct {
	db *sql.DB
}

func NewSQLiteReminderRepository(db *sql.DB) *SQLiteReminderRepository {
	return &SQLiteReminderRepository{db: db}
}

// Load returns every persisted reminder. Rows whose JSON no longer
// unmarshals are skipped rather than failing the whole read; a reminder
// that cannot be decoded is treated as absent.
func (r *SQLiteReminderRepository) Load(ctx context.Context) (map[int64]*reminder.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id, payload FROM reminders`)
	if err != nil {
		return nil, fmt.Errorf("error listing reminders: %w", err)
	}
	defer rows.Close()

	reminders := make(map[int64]*reminder.Reminder)
	for rows.Next() {
		var userID int64
		var raw []byte
		if err := rows.Scan(&userID, &raw); err != nil {
			return nil, fmt.Errorf("error scanning reminder row: %w", err)
		}
		rem := &reminder.Reminder{}
		if err := json.Unmarshal(raw, rem); err != nil {
			continue
		}
		reminders[userID] = rem
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}
	return reminders, nil
}

func (r *SQLiteReminderRepository) Save(ctx context.Context, rem *reminder.Reminder) error {
	raw, err := json.Marshal(rem)
	if err != nil {
		return fmt.Errorf("error encoding reminder: %w", err)
	}

	query := `INSERT INTO reminders (user_id, payload) VALUES (?, ?)
               ON CONFLICT(user_id) DO UPDATE SET payload = excluded.payload`
	if _, err := r.db.ExecContext(ctx, query, rem.UserID, string(raw)); err != nil {
		return fmt.Errorf("error saving reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepository) Remove(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("error removing reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepository) Get(ctx context.Context, userID int64) (*reminder.Reminder, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM reminders WHERE user_id = ?`, userID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrReminderNotFound
		}
		return nil, fmt.Errorf("error getting reminder: %w", err)
	}

	rem := &reminder.Reminder{}
	if err := json.Unmarshal(raw, rem); err != nil {
		return nil, ErrReminderNotFound
	}
	return rem, nil
}
