package reminder

import (
	"time"
)

// Reminder is the single recurring reminder owned by a user.
// Raw start-time and interval strings are kept verbatim so the record can be
// displayed back to the user and re-parsed identically during recovery.
type Reminder struct {
	UserID    int64          `json:"userId"`
	Target    DeliveryTarget `json:"deliveryTarget"`
	Message   string         `json:"messageTemplate"`
	StartTime string         `json:"startTimeRaw"`
	Interval  string         `json:"intervalRaw"`
	CreatedAt time.Time      `json:"createdAt"`
}

// DeliveryTarget identifies where rendered messages are sent: a chat plus,
// for forum supergroups, the topic thread inside it.
type DeliveryTarget struct {
	ChatID   int64 `json:"chatId"`
	ThreadID int   `json:"threadId,omitempty"`
}
