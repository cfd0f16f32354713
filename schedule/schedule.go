// Package schedule reconstructs a day's activity from the ledger: it
// buckets records by reporting period, computes category totals and
// proportional chart geometry, and maps records onto a time-of-day
// timeline.
package schedule

import (
	"sort"
	"time"

	"github.com/maruel/natural"

	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/internal/timeutil"
)

// Period is the reporting window used to filter records.
type Period string

const (
	Day   Period = "day"
	Week  Period = "week"
	Month Period = "month"
)

// Periods lists the selectable reporting periods in display order.
var Periods = []Period{Day, Week, Month}

// Cutoff returns the inclusive lower bound for the period. DAY is local
// midnight of today; WEEK and MONTH are rolling windows of 7 and 30 days
// ending now.
func Cutoff(p Period, now time.Time) time.Time {
	switch p {
	case Week:
		return now.Add(-7 * 24 * time.Hour)
	case Month:
		return now.Add(-30 * 24 * time.Hour)
	default:
		return timeutil.RoundToStart(now)
	}
}

// Filter selects the records that fall inside the period, preserving input
// order. When category is non-empty the result is further restricted to
// that category (drill-down).
func Filter(
	records []models.Record,
	p Period,
	now time.Time,
	category string,
) []models.Record {
	cutoff := Cutoff(p, now).UnixMilli()

	out := make([]models.Record, 0, len(records))

	for _, r := range records {
		if r.TimestampMillis < cutoff {
			continue
		}

		if category != "" && r.Category != category {
			continue
		}

		out = append(out, r)
	}

	return out
}

// Summary holds the per-category totals for a filtered record set. The
// totals and the grand total are always computed from the same set, so
// the category values sum to GrandTotal exactly.
type Summary struct {
	CategoryTotals map[string]int
	GrandTotal     int
	Count          int
}

// Summarize computes category totals over an already-filtered record set.
func Summarize(filtered []models.Record) Summary {
	s := Summary{
		CategoryTotals: make(map[string]int),
		Count:          len(filtered),
	}

	for _, r := range filtered {
		s.CategoryTotals[r.Category] += r.DurationMinutes
		s.GrandTotal += r.DurationMinutes
	}

	return s
}

// CategoryOrder returns the summary's categories in a stable display
// order: the active category list first (in its own order), then any stray
// categories found only in records, in natural order.
func (s Summary) CategoryOrder(categories []string) []string {
	out := make([]string, 0, len(s.CategoryTotals))
	seen := make(map[string]bool, len(s.CategoryTotals))

	for _, c := range categories {
		if _, ok := s.CategoryTotals[c]; ok {
			out = append(out, c)
			seen[c] = true
		}
	}

	var strays []string

	for c := range s.CategoryTotals {
		if !seen[c] {
			strays = append(strays, c)
		}
	}

	sort.Sort(natural.StringSlice(strays))

	return append(out, strays...)
}

// DayGroup is one day's worth of records for list rendering.
type DayGroup struct {
	Day     time.Time
	Records []models.Record
}

// GroupByDay buckets records by calendar day, preserving record order
// within each group. Groups are ordered most recent day first.
func GroupByDay(records []models.Record) []DayGroup {
	index := make(map[time.Time]int)

	var groups []DayGroup

	for _, r := range records {
		day := timeutil.RoundToStart(r.StartTime())

		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i

			groups = append(groups, DayGroup{Day: day})
		}

		groups[i].Records = append(groups[i].Records, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})

	return groups
}
