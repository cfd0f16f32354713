package schedule

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/zaotai/hearth/internal/models"
)

func record(id, category string, mins int, start time.Time) models.Record {
	return models.Record{
		ID:              id,
		Category:        category,
		DurationMinutes: mins,
		TimestampMillis: start.UnixMilli(),
		ActivityName:    "番茄鸡蛋面 Tomato Egg Noodles",
	}
}

func TestCutoff(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 30, 0, 0, time.Local)

	cases := []struct {
		period Period
		want   time.Time
	}{
		{Day, time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)},
		{Week, now.Add(-7 * 24 * time.Hour)},
		{Month, now.Add(-30 * 24 * time.Hour)},
	}

	for _, tc := range cases {
		got := Cutoff(tc.period, now)
		if !got.Equal(tc.want) {
			t.Errorf("%s: expected cutoff %v, but got %v", tc.period, tc.want, got)
		}
	}
}

func TestFilter(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 30, 0, 0, time.Local)

	records := []models.Record{
		record("today", "Work", 25, now.Add(-time.Hour)),
		record("yesterday", "Work", 25, now.Add(-24*time.Hour)),
		record("lastweek", "Study", 45, now.Add(-8*24*time.Hour)),
		record("lastmonth", "Study", 45, now.Add(-31*24*time.Hour)),
	}

	cases := []struct {
		period   Period
		category string
		want     []string
	}{
		{Day, "", []string{"today"}},
		{Week, "", []string{"today", "yesterday"}},
		{Month, "", []string{"today", "yesterday", "lastweek"}},
		{Month, "Study", []string{"lastweek"}},
	}

	for _, tc := range cases {
		got := Filter(records, tc.period, now, tc.category)

		ids := make([]string, len(got))
		for i, r := range got {
			ids[i] = r.ID
		}

		if diff := cmp.Diff(tc.want, ids); diff != "" {
			t.Errorf("%s/%q mismatch (-want +got):\n%s", tc.period, tc.category, diff)
		}
	}
}

func TestSummarizeIdentity(t *testing.T) {
	now := time.Now()

	cases := [][]models.Record{
		nil,
		{record("r1", "Work", 25, now)},
		{
			record("r1", "Work", 25, now),
			record("r2", "Work", 15, now),
			record("r3", "Study", 45, now),
			record("r4", "Zen", 0, now),
		},
	}

	for _, records := range cases {
		s := Summarize(records)

		var sum int
		for _, v := range s.CategoryTotals {
			sum += v
		}

		if sum != s.GrandTotal {
			t.Errorf("expected totals to sum to %d, but got %d", s.GrandTotal, sum)
		}

		if s.Count != len(records) {
			t.Errorf("expected count %d, but got %d", len(records), s.Count)
		}
	}
}

func TestCategoryOrder(t *testing.T) {
	now := time.Now()

	s := Summarize([]models.Record{
		record("r1", "Zen", 10, now),
		record("r2", "Work", 25, now),
		record("r3", "chore 10", 5, now),
		record("r4", "chore 2", 5, now),
	})

	got := s.CategoryOrder([]string{"Work", "Study", "Health", "Zen"})

	// active list order first, then strays in natural order
	want := []string{"Work", "Zen", "chore 2", "chore 10"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByDay(t *testing.T) {
	d1 := time.Date(2024, 3, 9, 9, 0, 0, 0, time.Local)
	d2 := time.Date(2024, 3, 8, 22, 0, 0, 0, time.Local)

	groups := GroupByDay([]models.Record{
		record("r1", "Work", 25, d1),
		record("r2", "Work", 25, d2),
		record("r3", "Study", 45, d1.Add(2*time.Hour)),
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, but got %d", len(groups))
	}

	if !groups[0].Day.After(groups[1].Day) {
		t.Error("expected most recent day first")
	}

	if len(groups[0].Records) != 2 || len(groups[1].Records) != 1 {
		t.Errorf(
			"expected group sizes 2 and 1, but got %d and %d",
			len(groups[0].Records),
			len(groups[1].Records),
		)
	}
}
