// Package engine operates the Hearth clock. The Clock is a value that moves
// through a small state machine via pure transition functions; the host
// owns the single Clock instance and is responsible for scheduling the
// one-second tick while the clock is running.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/zaotai/hearth/catalog"
	"github.com/zaotai/hearth/internal/models"
)

// Mode determines whether the clock counts down or up, and whether a
// completed session is recordable.
type Mode string

const (
	Focus      Mode = "focus"
	ShortBreak Mode = "short_break"
	LongBreak  Mode = "long_break"
	CountUp    Mode = "count_up"
)

// Status is the clock's position in the state machine.
type Status string

const (
	Idle     Status = "idle"
	Running  Status = "running"
	Paused   Status = "paused"
	Finished Status = "finished"
)

// MaxDurationMinutes caps manual duration edits.
const MaxDurationMinutes = 999

// Clock is the single mutable timer state. In countdown modes Seconds is
// the time remaining; in count-up mode it is the time elapsed.
type Clock struct {
	Mode            Mode
	Status          Status
	Seconds         int
	DurationMinutes int
	Activity        catalog.Activity
	Category        string
}

// New returns an idle clock configured for the given activity. A
// zero-duration activity puts the clock in count-up mode regardless of the
// requested mode.
func New(mode Mode, activity catalog.Activity, category string) Clock {
	if activity.CountUp() {
		mode = CountUp
	}

	c := Clock{
		Mode:            mode,
		Status:          Idle,
		Activity:        activity,
		Category:        category,
		DurationMinutes: activity.NominalDurationMinutes,
	}

	return c.rezero()
}

// rezero reinitialises the seconds counter from the configured duration and
// mode.
func (c Clock) rezero() Clock {
	if c.Mode == CountUp {
		c.Seconds = 0
	} else {
		c.Seconds = c.DurationMinutes * 60
	}

	return c
}

// CountingUp reports whether the clock accumulates elapsed time instead of
// counting down.
func (c Clock) CountingUp() bool {
	return c.Mode == CountUp
}

// Recordable reports whether a completed session in the current mode
// produces a ledger record. Break sessions are never recorded.
func (c Clock) Recordable() bool {
	return c.Mode == Focus || c.Mode == CountUp
}

// WouldDiscard reports whether changing the activity or mode right now
// would throw away an active session. The caller is responsible for
// obtaining confirmation before resetting.
func (c Clock) WouldDiscard() bool {
	return c.Status == Running
}

// Start transitions IDLE or PAUSED to RUNNING. Any other state is a no-op.
func (c Clock) Start() Clock {
	if c.Status == Idle || c.Status == Paused {
		c.Status = Running
	}

	return c
}

// Pause transitions RUNNING to PAUSED without losing the seconds counter.
func (c Clock) Pause() Clock {
	if c.Status == Running {
		c.Status = Paused
	}

	return c
}

// Reset returns the clock to IDLE and reinitialises the seconds counter
// from the configured activity and mode.
func (c Clock) Reset() Clock {
	c.Status = Idle

	return c.rezero()
}

// Tick advances a running clock by one second. When a countdown reaches
// zero the clock settles into FINISHED and, in recordable modes, the
// completed session is returned as a record timestamped at session start.
// The caller must forward that record to the ledger exactly once, before
// treating the FINISHED transition as complete.
func (c Clock) Tick(now time.Time) (Clock, *models.Record) {
	if c.Status != Running {
		return c, nil
	}

	if c.CountingUp() {
		c.Seconds++
		return c, nil
	}

	c.Seconds--
	if c.Seconds > 0 {
		return c, nil
	}

	c.Seconds = 0
	c.Status = Finished

	if !c.Recordable() {
		return c, nil
	}

	sessionLength := time.Duration(c.DurationMinutes) * time.Minute

	return c, &models.Record{
		ID:              uuid.NewString(),
		Category:        c.Category,
		DurationMinutes: c.DurationMinutes,
		TimestampMillis: now.Add(-sessionLength).UnixMilli(),
		ActivityName:    c.Activity.Name,
	}
}

// FinishNow ends a count-up session early and returns the clock to IDLE
// with the counter re-zeroed. Sessions shorter than a minute are discarded
// without a record.
func (c Clock) FinishNow(now time.Time) (Clock, *models.Record) {
	if !c.CountingUp() || (c.Status != Running && c.Status != Paused) {
		return c, nil
	}

	elapsed := c.Seconds
	mins := elapsed / 60

	c.Status = Idle
	c = c.rezero()

	if mins < 1 {
		return c, nil
	}

	return c, &models.Record{
		ID:              uuid.NewString(),
		Category:        c.Category,
		DurationMinutes: mins,
		TimestampMillis: now.Add(-time.Duration(elapsed) * time.Second).UnixMilli(),
		ActivityName:    c.Activity.Name,
	}
}

// SetMode switches the clock mode, forcing an implicit reset with the new
// activity. Only permitted while IDLE.
func (c Clock) SetMode(mode Mode, activity catalog.Activity) Clock {
	if c.Status != Idle {
		return c
	}

	return New(mode, activity, c.Category)
}

// SetActivity selects a different activity, resetting the clock. Only
// permitted while IDLE; callers must check WouldDiscard and confirm before
// resetting a running clock themselves.
func (c Clock) SetActivity(activity catalog.Activity) Clock {
	if c.Status != Idle {
		return c
	}

	mode := c.Mode
	if activity.CountUp() {
		mode = CountUp
	} else if c.Mode == CountUp {
		mode = Focus
	}

	return New(mode, activity, c.Category)
}

// SetDuration edits the configured duration. Only permitted while IDLE in
// countdown modes; out-of-range values are ignored and the clock keeps its
// prior value.
func (c Clock) SetDuration(mins int) Clock {
	if c.Status != Idle || c.CountingUp() {
		return c
	}

	if mins < 0 || mins > MaxDurationMinutes {
		return c
	}

	c.DurationMinutes = mins

	return c.rezero()
}

// SetCategory changes the category that a completed session will be
// recorded under. Unlike mode and duration this is not guarded by the state
// machine.
func (c Clock) SetCategory(category string) Clock {
	c.Category = category
	return c
}
