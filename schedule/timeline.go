package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/internal/timeutil"
)

const (
	// MinutesInADay bounds the timeline's vertical extent.
	MinutesInADay = 24 * 60

	// minCreateMinutes is the floor applied to drag-created records so
	// that a tiny drag still yields a usable session.
	minCreateMinutes = 5

	// initialDragSpanMinutes is the span a drag covers the moment the
	// pointer goes down, before any movement.
	initialDragSpanMinutes = 15
)

// Layout converts record times and durations into vertical pixel
// geometry for the day timeline.
type Layout struct {
	PixelsPerMinute float64
	MinBlockHeight  float64
}

// Block is one record positioned on the day timeline. Blocks may overlap
// in time; they stack by z-order with later-listed blocks drawn above
// earlier ones, so ZIndex increases with position in the input.
type Block struct {
	Record models.Record
	Top    float64
	Height float64
	ZIndex int
}

// Height returns the timeline's total vertical extent.
func (l Layout) Height() float64 {
	return MinutesInADay * l.PixelsPerMinute
}

// MinuteAt converts a vertical offset back into a minute-of-day bucket,
// clamped to the day.
func (l Layout) MinuteAt(y float64) int {
	min := int(y / l.PixelsPerMinute)

	if min < 0 {
		return 0
	}

	if min >= MinutesInADay {
		return MinutesInADay - 1
	}

	return min
}

// Blocks maps every record to a vertical block positioned by its local
// time of day. Very short sessions are floored to MinBlockHeight so they
// remain clickable.
func (l Layout) Blocks(records []models.Record) []Block {
	out := make([]Block, 0, len(records))

	for i, r := range records {
		start := timeutil.MinuteOfDay(r.StartTime())

		height := float64(r.DurationMinutes) * l.PixelsPerMinute
		if height < l.MinBlockHeight {
			height = l.MinBlockHeight
		}

		out = append(out, Block{
			Record: r,
			Top:    float64(start) * l.PixelsPerMinute,
			Height: height,
			ZIndex: i,
		})
	}

	return out
}

// BlockAt returns the topmost block under the given vertical offset, if
// any. Used for pointer capture priority: an existing block wins over an
// empty-space drag start.
func (l Layout) BlockAt(blocks []Block, y float64) (Block, bool) {
	var (
		hit   Block
		found bool
	)

	for _, b := range blocks {
		if y < b.Top || y >= b.Top+b.Height {
			continue
		}

		if !found || b.ZIndex > hit.ZIndex {
			hit = b
			found = true
		}
	}

	return hit, found
}

// Drag tracks one in-flight pointer gesture over the empty timeline area.
// The zero value is an inactive drag.
type Drag struct {
	active   bool
	startMin int
	endMin   int
}

// Active reports whether a gesture is in flight.
func (d *Drag) Active() bool {
	return d.active
}

// Span returns the gesture's current [min,max] minute range.
func (d *Drag) Span() (start, end int) {
	start, end = d.startMin, d.endMin
	if end < start {
		start, end = end, start
	}

	return start, end
}

// Begin captures the start minute bucket on pointer-down. The selection
// initially covers a short span below the start point.
func (d *Drag) Begin(minute int) {
	d.active = true
	d.startMin = minute
	d.endMin = minute + initialDragSpanMinutes
}

// Move updates the live end bucket on pointer-move. Ignored when no
// gesture is in flight.
func (d *Drag) Move(minute int) {
	if !d.active {
		return
	}

	d.endMin = minute
}

// Release ends the gesture and returns a candidate record spanning the
// dragged range on today's date, with the duration floored to five
// minutes. The candidate must go through an edit/confirm step before it is
// appended to the ledger.
func (d *Drag) Release(now time.Time, category, activityName string) (models.Record, bool) {
	if !d.active {
		return models.Record{}, false
	}

	d.active = false

	start, end := d.Span()

	dur := end - start
	if dur < minCreateMinutes {
		dur = minCreateMinutes
	}

	return models.Record{
		ID:              uuid.NewString(),
		Category:        category,
		DurationMinutes: dur,
		TimestampMillis: timeutil.AtMinuteOfDay(now, start).UnixMilli(),
		ActivityName:    activityName,
	}, true
}

// Cancel abandons the gesture without producing a candidate.
func (d *Drag) Cancel() {
	d.active = false
}
