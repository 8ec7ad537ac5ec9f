package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"repeat_reminder_bot/internal/domain/reminder"
)

func newTestRepo(t *testing.T) (*SQLiteReminderRepository, *sql.DB) {
	t.Helper()
	db, err := NewSQLiteConnection(filepath.Join(t.TempDir(), "reminders.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteReminderRepository(db), db
}

func testReminder(userID int64) *reminder.Reminder {
	return &reminder.Reminder{
		UserID:    userID,
		Target:    reminder.DeliveryTarget{ChatID: 100 + userID, ThreadID: 5},
		Message:   "물 마실 시간! ${날짜}",
		StartTime: "2025-12-03T10:00",
		Interval:  "10m",
		CreatedAt: time.Date(2025, 12, 1, 9, 30, 0, 0, reminder.Location()),
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	want := testReminder(1)
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.UserID != want.UserID || got.Target != want.Target ||
		got.Message != want.Message || got.StartTime != want.StartTime ||
		got.Interval != want.Interval {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}
}

func TestGetMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	if _, err := repo.Get(context.Background(), 42); !errors.Is(err, ErrReminderNotFound) {
		t.Errorf("Get = %v, want ErrReminderNotFound", err)
	}
}

func TestLoadEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load returned %d records from a fresh store, want 0", len(got))
	}
}

func TestSaveReplacesExistingRecord(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	first := testReminder(1)
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second := testReminder(1)
	second.Interval = "2h"
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	all, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Load returned %d records, want 1", len(all))
	}
	if all[1].Interval != "2h" {
		t.Errorf("Interval = %q, want %q", all[1].Interval, "2h")
	}
}

func TestRemove(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, testReminder(1)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := repo.Get(ctx, 1); !errors.Is(err, ErrReminderNotFound) {
		t.Errorf("Get after Remove = %v, want ErrReminderNotFound", err)
	}

	// Removing an absent record is not an error.
	if err := repo.Remove(ctx, 99); err != nil {
		t.Errorf("Remove of missing record failed: %v", err)
	}
}

func TestLoadSkipsCorruptRow(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, testReminder(1)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO reminders (user_id, payload) VALUES (2, 'not json')`); err != nil {
		t.Fatalf("failed to insert corrupt row: %v", err)
	}

	all, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Load returned %d records, want 1 (corrupt row skipped)", len(all))
	}
	if _, ok := all[1]; !ok {
		t.Error("valid record missing from Load result")
	}

	if _, err := repo.Get(ctx, 2); !errors.Is(err, ErrReminderNotFound) {
		t.Errorf("Get of corrupt record = %v, want ErrReminderNotFound", err)
	}
}
