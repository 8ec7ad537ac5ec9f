package reminder

import (
	"context"
)

// Repository defines the operations for persisting and retrieving Reminder records.
// The mapping is keyed by the owning user's ID; at most one record per user.
type Repository interface {
	// Load returns every persisted reminder. A missing or unreadable
	// underlying store yields an empty map, not an error.
	Load(ctx context.Context) (map[int64]*Reminder, error)
	Save(ctx context.Context, rem *Reminder) error
	Remove(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*Reminder, error)
}
