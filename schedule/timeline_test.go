package schedule

import (
	"testing"
	"time"

	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/internal/timeutil"
)

var testLayout = Layout{PixelsPerMinute: 1.0, MinBlockHeight: 16}

func TestBlocksGeometry(t *testing.T) {
	start := time.Date(2024, 3, 9, 8, 30, 0, 0, time.Local)

	blocks := testLayout.Blocks([]models.Record{
		record("long", "Work", 90, start),
		record("short", "Zen", 3, start.Add(4*time.Hour)),
	})

	if blocks[0].Top != 510 {
		t.Errorf("expected top offset 510 for 08:30, but got %v", blocks[0].Top)
	}

	if blocks[0].Height != 90 {
		t.Errorf("expected height 90, but got %v", blocks[0].Height)
	}

	// very short sessions are floored so they remain clickable
	if blocks[1].Height != 16 {
		t.Errorf("expected floored height 16, but got %v", blocks[1].Height)
	}

	if blocks[1].ZIndex <= blocks[0].ZIndex {
		t.Error("expected later-inserted blocks to stack above earlier ones")
	}
}

func TestBlockAtPrefersTopmost(t *testing.T) {
	start := time.Date(2024, 3, 9, 8, 0, 0, 0, time.Local)

	// two records overlapping in time
	blocks := testLayout.Blocks([]models.Record{
		record("under", "Work", 60, start),
		record("over", "Study", 30, start.Add(10*time.Minute)),
	})

	hit, ok := testLayout.BlockAt(blocks, 495)
	if !ok {
		t.Fatal("expected a block at 08:15")
	}

	if hit.Record.ID != "over" {
		t.Errorf("expected the topmost block, but got %q", hit.Record.ID)
	}

	if _, ok := testLayout.BlockAt(blocks, 1200); ok {
		t.Error("expected no block at 20:00")
	}
}

func TestMinuteAtClamps(t *testing.T) {
	cases := []struct {
		y    float64
		want int
	}{
		{-10, 0},
		{0, 0},
		{509, 509},
		{2000, MinutesInADay - 1},
	}

	for _, tc := range cases {
		if got := testLayout.MinuteAt(tc.y); got != tc.want {
			t.Errorf("MinuteAt(%v): expected %d, but got %d", tc.y, tc.want, got)
		}
	}
}

func TestDragCreateClampsDuration(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 0, 0, 0, time.Local)

	var d Drag

	d.Begin(100)
	d.Move(102)

	rec, ok := d.Release(now, "Work", "Manually Added")
	if !ok {
		t.Fatal("expected a candidate record")
	}

	if rec.DurationMinutes != 5 {
		t.Errorf("expected floored duration 5, but got %d", rec.DurationMinutes)
	}

	want := timeutil.AtMinuteOfDay(now, 100)
	if !rec.StartTime().Equal(want) {
		t.Errorf("expected start time %v, but got %v", want, rec.StartTime())
	}
}

func TestDragReversedRange(t *testing.T) {
	var d Drag

	d.Begin(200)
	d.Move(140)

	rec, ok := d.Release(time.Now(), "Study", "Manually Added")
	if !ok {
		t.Fatal("expected a candidate record")
	}

	if rec.DurationMinutes != 60 {
		t.Errorf("expected duration 60, but got %d", rec.DurationMinutes)
	}

	if got := timeutil.MinuteOfDay(rec.StartTime()); got != 140 {
		t.Errorf("expected start minute 140, but got %d", got)
	}
}

func TestDragInitialSpan(t *testing.T) {
	var d Drag

	d.Begin(100)

	start, end := d.Span()
	if start != 100 || end != 115 {
		t.Errorf("expected initial span [100,115], but got [%d,%d]", start, end)
	}
}

func TestDragCancel(t *testing.T) {
	var d Drag

	d.Begin(100)
	d.Cancel()

	if _, ok := d.Release(time.Now(), "Work", "x"); ok {
		t.Error("expected no candidate after cancel")
	}

	// moves after cancel are ignored
	d.Move(500)
	if d.Active() {
		t.Error("expected drag to stay inactive")
	}
}
