package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
)

// ReminderTimer owns the timers backing one active reminder: an optional
// one-shot delay timer that aligns the first delivery to a future start
// instant, and a dedicated cron engine for the repeat cadence. The cron
// engine is created stopped; the recurring schedule only runs once
// StartRecurring is called.
//
// ReminderTimer is not synchronized; the scheduling engine serializes all
// calls under its own lock.
type ReminderTimer struct {
	cronEngine *cron.Cron
	delay      *time.Timer
}

// NewReminderTimer builds a stopped recurring timer for the given cron
// expression. fire runs on every recurring tick.
func NewReminderTimer(cronSpec string, loc *time.Location, fire func()) (*ReminderTimer, error) {
	engine := cron.New(cron.WithLocation(loc))
	if _, err := engine.AddFunc(cronSpec, fire); err != nil {
		return nil, err
	}
	return &ReminderTimer{cronEngine: engine}, nil
}

// StartAfter arms the one-shot delay timer; onElapsed runs once after d.
func (t *ReminderTimer) StartAfter(d time.Duration, onElapsed func()) {
	t.delay = time.AfterFunc(d, onElapsed)
}

// StartRecurring begins the recurring schedule. The first tick happens at
// the next boundary the cron expression matches, not immediately.
func (t *ReminderTimer) StartRecurring() {
	t.cronEngine.Start()
}

// ClearDelay drops the delay handle once it has fired.
func (t *ReminderTimer) ClearDelay() {
	t.delay = nil
}

// Stop cancels the pending delay timer, if any, and stops the recurring
// engine. A callback the runtime has already begun invoking may still run
// to completion; callers guard against that with ownership checks.
func (t *ReminderTimer) Stop() {
	if t.delay != nil {
		t.delay.Stop()
		t.delay = nil
	}
	t.cronEngine.Stop()
}
