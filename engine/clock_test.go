package engine

import (
	"testing"
	"time"

	"github.com/zaotai/hearth/catalog"
	"github.com/zaotai/hearth/internal/models"
)

func runToCompletion(
	t *testing.T,
	c Clock,
	now time.Time,
) (Clock, []models.Record) {
	t.Helper()

	var emitted []models.Record

	for i := 0; i < c.DurationMinutes*60; i++ {
		var rec *models.Record

		now = now.Add(time.Second)

		c, rec = c.Tick(now)
		if rec != nil {
			emitted = append(emitted, *rec)
		}
	}

	return c, emitted
}

func TestCountdownCompletion(t *testing.T) {
	cases := []struct {
		activity catalog.Activity
		category string
	}{
		{catalog.FocusItems[0], "Work"},
		{catalog.FocusItems[4], "Zen"},
	}

	for _, tc := range cases {
		start := time.Date(2024, 3, 9, 14, 0, 0, 0, time.Local)

		c := New(Focus, tc.activity, tc.category).Start()

		c, emitted := runToCompletion(t, c, start)

		if c.Status != Finished {
			t.Fatalf("expected status %q, but got %q", Finished, c.Status)
		}

		if c.Seconds != 0 {
			t.Errorf("expected 0 seconds remaining, but got %d", c.Seconds)
		}

		if len(emitted) != 1 {
			t.Fatalf("expected exactly 1 record, but got %d", len(emitted))
		}

		rec := emitted[0]

		if rec.DurationMinutes != tc.activity.NominalDurationMinutes {
			t.Errorf(
				"expected record duration %d, but got %d",
				tc.activity.NominalDurationMinutes,
				rec.DurationMinutes,
			)
		}

		if rec.ActivityName != tc.activity.Name {
			t.Errorf(
				"expected activity name %q, but got %q",
				tc.activity.Name,
				rec.ActivityName,
			)
		}

		if rec.Category != tc.category {
			t.Errorf("expected category %q, but got %q", tc.category, rec.Category)
		}

		// the record is timestamped at session start, not completion
		if got := rec.StartTime(); !got.Equal(start) {
			t.Errorf("expected start time %v, but got %v", start, got)
		}
	}
}

func TestBreakCompletionEmitsNoRecord(t *testing.T) {
	for _, mode := range []Mode{ShortBreak, LongBreak} {
		c := New(mode, catalog.BreakItems[0], "Work").Start()

		c, emitted := runToCompletion(t, c, time.Now())

		if c.Status != Finished {
			t.Fatalf("expected status %q, but got %q", Finished, c.Status)
		}

		if len(emitted) != 0 {
			t.Errorf("%s: expected no records, but got %d", mode, len(emitted))
		}
	}
}

func TestTickIgnoredUnlessRunning(t *testing.T) {
	c := New(Focus, catalog.FocusItems[0], "Work")

	before := c.Seconds

	for _, c := range []Clock{c, c.Start().Pause(), c.Start().Reset()} {
		next, rec := c.Tick(time.Now())

		if rec != nil {
			t.Error("expected no record from a non-running tick")
		}

		if next.Seconds != before {
			t.Errorf(
				"expected seconds to stay at %d, but got %d",
				before,
				next.Seconds,
			)
		}
	}
}

func TestPauseKeepsRemainingTime(t *testing.T) {
	c := New(Focus, catalog.FocusItems[0], "Work").Start()

	now := time.Now()
	for i := 0; i < 90; i++ {
		now = now.Add(time.Second)
		c, _ = c.Tick(now)
	}

	c = c.Pause()

	if c.Status != Paused {
		t.Fatalf("expected status %q, but got %q", Paused, c.Status)
	}

	want := 25*60 - 90
	if c.Seconds != want {
		t.Errorf("expected %d seconds remaining, but got %d", want, c.Seconds)
	}

	c = c.Start()
	if c.Status != Running {
		t.Errorf("expected status %q, but got %q", Running, c.Status)
	}
}

func TestCountUpSubMinuteDiscard(t *testing.T) {
	c := New(CountUp, catalog.FreeSimmer, "Zen").Start()

	now := time.Now()
	for i := 0; i < 40; i++ {
		now = now.Add(time.Second)
		c, _ = c.Tick(now)
	}

	c, rec := c.FinishNow(now)

	if rec != nil {
		t.Error("expected sub-minute session to be discarded")
	}

	if c.Status != Idle {
		t.Errorf("expected status %q, but got %q", Idle, c.Status)
	}

	if c.Seconds != 0 {
		t.Errorf("expected elapsed to reset to 0, but got %d", c.Seconds)
	}
}

func TestCountUpFinishNow(t *testing.T) {
	c := New(CountUp, catalog.FreeSimmer, "Study").Start()

	start := time.Date(2024, 3, 9, 9, 30, 0, 0, time.Local)

	now := start
	for i := 0; i < 150; i++ {
		now = now.Add(time.Second)
		c, _ = c.Tick(now)
	}

	c, rec := c.FinishNow(now)
	if rec == nil {
		t.Fatal("expected a record from a 150s count-up session")
	}

	if rec.DurationMinutes != 2 {
		t.Errorf("expected 2 recorded minutes, but got %d", rec.DurationMinutes)
	}

	if got := rec.StartTime(); !got.Equal(start) {
		t.Errorf("expected start time %v, but got %v", start, got)
	}

	if c.Status != Idle || c.Seconds != 0 {
		t.Errorf("expected re-zeroed idle clock, but got %s/%d", c.Status, c.Seconds)
	}
}

func TestFinishNowCountdownNoOp(t *testing.T) {
	c := New(Focus, catalog.FocusItems[0], "Work").Start()

	next, rec := c.FinishNow(time.Now())

	if rec != nil {
		t.Error("expected no record from finish-now in a countdown mode")
	}

	if next.Status != Running {
		t.Errorf("expected status %q, but got %q", Running, next.Status)
	}
}

func TestSetDuration(t *testing.T) {
	cases := []struct {
		name string
		mins int
		want int
	}{
		{"valid", 50, 50},
		{"zero", 0, 0},
		{"negative", -5, 25},
		{"above cap", 1000, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(Focus, catalog.FocusItems[0], "Work").SetDuration(tc.mins)

			if c.DurationMinutes != tc.want {
				t.Errorf(
					"expected duration %d, but got %d",
					tc.want,
					c.DurationMinutes,
				)
			}

			if c.Seconds != tc.want*60 {
				t.Errorf(
					"expected %d seconds, but got %d",
					tc.want*60,
					c.Seconds,
				)
			}
		})
	}

	t.Run("rejected while running", func(t *testing.T) {
		c := New(Focus, catalog.FocusItems[0], "Work").Start().SetDuration(50)

		if c.DurationMinutes != 25 {
			t.Errorf("expected duration 25, but got %d", c.DurationMinutes)
		}
	})

	t.Run("rejected in count-up", func(t *testing.T) {
		c := New(CountUp, catalog.FreeSimmer, "Work").SetDuration(50)

		if c.DurationMinutes != 0 {
			t.Errorf("expected duration 0, but got %d", c.DurationMinutes)
		}
	})
}

func TestSetModeOnlyWhileIdle(t *testing.T) {
	c := New(Focus, catalog.FocusItems[0], "Work").Start()

	next := c.SetMode(ShortBreak, catalog.BreakItems[0])
	if next.Mode != Focus {
		t.Errorf("expected mode to stay %q, but got %q", Focus, next.Mode)
	}

	next = c.Pause().Reset().SetMode(ShortBreak, catalog.BreakItems[0])
	if next.Mode != ShortBreak {
		t.Errorf("expected mode %q, but got %q", ShortBreak, next.Mode)
	}

	if next.Seconds != catalog.BreakItems[0].NominalDurationMinutes*60 {
		t.Errorf("expected implicit reset, but got %d seconds", next.Seconds)
	}
}

func TestWouldDiscard(t *testing.T) {
	c := New(Focus, catalog.FocusItems[0], "Work")

	if c.WouldDiscard() {
		t.Error("idle clock should not require confirmation")
	}

	if !c.Start().WouldDiscard() {
		t.Error("running clock should require confirmation")
	}
}
