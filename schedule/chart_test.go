package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/zaotai/hearth/internal/models"
)

func TestSlicesCoverFullCircle(t *testing.T) {
	now := time.Now()

	s := Summarize([]models.Record{
		record("r1", "Work", 25, now),
		record("r2", "Study", 45, now),
		record("r3", "Zen", 10, now),
	})

	slices := s.Slices([]string{"Work", "Study", "Zen"})

	var fractions float64
	for _, sl := range slices {
		fractions += sl.Fraction
	}

	if math.Abs(fractions-1.0) > 1e-9 {
		t.Errorf("expected slice fractions to sum to 1.0, but got %v", fractions)
	}

	// slices are laid end to end, starting at 12 o'clock
	if slices[0].StartAngle != -math.Pi/2 {
		t.Errorf("expected first slice at 12 o'clock, but got %v", slices[0].StartAngle)
	}

	for i := 1; i < len(slices); i++ {
		prevEnd := slices[i-1].StartAngle + slices[i-1].SweepAngle
		if math.Abs(slices[i].StartAngle-prevEnd) > 1e-9 {
			t.Errorf(
				"slice %d: expected start angle %v, but got %v",
				i,
				prevEnd,
				slices[i].StartAngle,
			)
		}
	}
}

func TestSlicesEmpty(t *testing.T) {
	s := Summarize(nil)

	if got := s.Slices([]string{"Work"}); got != nil {
		t.Errorf("expected no slices for an empty summary, but got %v", got)
	}
}

func TestSlicesSkipZeroCategories(t *testing.T) {
	now := time.Now()

	s := Summarize([]models.Record{
		record("r1", "Work", 25, now),
		record("r2", "Zen", 0, now),
	})

	slices := s.Slices([]string{"Work", "Zen"})

	if len(slices) != 1 || slices[0].Category != "Work" {
		t.Errorf("expected a single Work slice, but got %v", slices)
	}

	if slices[0].Fraction != 1.0 {
		t.Errorf("expected fraction 1.0, but got %v", slices[0].Fraction)
	}
}
