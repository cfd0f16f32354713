// Package ledger owns the list of completed focus records and the active
// category set. Every mutation writes through to the durable store before
// it is considered applied.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zaotai/hearth/internal/models"
	"github.com/zaotai/hearth/store"
)

var (
	ErrBlankCategory     = errors.New("category name cannot be blank")
	ErrDuplicateCategory = errors.New("a category with this name already exists")
	ErrLastCategory      = errors.New("keep at least one category")
	ErrUnknownCategory   = errors.New("no such category")
	ErrBadMergeTarget    = errors.New("merge target must be a different existing category")
	ErrUnknownRecord     = errors.New("no record with this id")
)

// DefaultCategories seeds the category set on first run or after storage
// corruption.
var DefaultCategories = []string{"Work", "Study", "Health", "Zen"}

// Edit carries the editable fields of a record. StartTimeOfDay repositions
// the record within its current day.
type Edit struct {
	Category        string
	DurationMinutes int
	StartHour       int
	StartMinute     int
}

// Ledger is the in-memory ledger backed by a durable store. Records are
// held most-recent-first.
type Ledger struct {
	db         store.DB
	records    []models.Record
	categories []string
}

// New loads the ledger from the store, substituting an empty record list
// and the default category set when data is missing or corrupt.
func New(db store.DB) (*Ledger, error) {
	records, err := db.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}

	categories, err := db.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("loading categories: %w", err)
	}

	if len(categories) == 0 {
		categories = append([]string(nil), DefaultCategories...)
	}

	return &Ledger{
		db:         db,
		records:    records,
		categories: categories,
	}, nil
}

// Records returns a copy of the ledger in display order (most recent
// first).
func (l *Ledger) Records() []models.Record {
	out := make([]models.Record, len(l.records))
	copy(out, l.records)

	return out
}

// Categories returns a copy of the active category set in insertion order.
func (l *Ledger) Categories() []string {
	out := make([]string, len(l.categories))
	copy(out, l.categories)

	return out
}

// HasCategory reports whether name is in the active category set.
// Comparison is case-sensitive.
func (l *Ledger) HasCategory(name string) bool {
	for _, c := range l.categories {
		if c == name {
			return true
		}
	}

	return false
}

// Referenced reports whether any record is tagged with the category.
func (l *Ledger) Referenced(name string) bool {
	for _, r := range l.records {
		if r.Category == name {
			return true
		}
	}

	return false
}

// Append prepends a record and persists the ledger.
func (l *Ledger) Append(rec models.Record) error {
	l.records = append([]models.Record{rec}, l.records...)

	return l.db.SaveRecords(l.records)
}

// ReplaceAll swaps the entire record collection and persists it. Edits and
// deletes of existing entries are expressed through this operation.
func (l *Ledger) ReplaceAll(records []models.Record) error {
	l.records = records

	return l.db.SaveRecords(l.records)
}

// UpdateRecord applies an edit to the record with the given id. Field
// validation is the caller's responsibility; the ledger only matches on a
// non-empty id.
func (l *Ledger) UpdateRecord(id string, edit Edit) error {
	if id == "" {
		return ErrUnknownRecord
	}

	updated := make([]models.Record, len(l.records))
	copy(updated, l.records)

	found := false

	for i, r := range updated {
		if r.ID != id {
			continue
		}

		day := r.StartTime()
		start := time.Date(
			day.Year(), day.Month(), day.Day(),
			edit.StartHour, edit.StartMinute, 0, 0, day.Location(),
		)

		r.Category = edit.Category
		r.DurationMinutes = edit.DurationMinutes
		r.TimestampMillis = start.UnixMilli()

		updated[i] = r
		found = true

		break
	}

	if !found {
		return ErrUnknownRecord
	}

	return l.ReplaceAll(updated)
}

// DeleteRecord removes the record with the given id. The caller is
// responsible for obtaining user confirmation first.
func (l *Ledger) DeleteRecord(id string) error {
	updated := l.records[:0:0]

	found := false

	for _, r := range l.records {
		if r.ID == id && id != "" {
			found = true
			continue
		}

		updated = append(updated, r)
	}

	if !found {
		return ErrUnknownRecord
	}

	return l.ReplaceAll(updated)
}

// AddCategory appends a new category after trimming surrounding
// whitespace. Blank and duplicate names are rejected.
func (l *Ledger) AddCategory(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrBlankCategory
	}

	if l.HasCategory(trimmed) {
		return ErrDuplicateCategory
	}

	l.categories = append(l.categories, trimmed)

	return l.db.SaveCategories(l.categories)
}

// DeleteCategory removes a category from the active set. Records that
// reference it are rewritten to mergeTarget when one is given, or removed
// outright when mergeTarget is empty. Deleting the last remaining category
// is refused. Callers must use Referenced to decide whether to prompt for
// merge-or-purge intent before calling.
func (l *Ledger) DeleteCategory(name, mergeTarget string) error {
	if len(l.categories) <= 1 {
		return ErrLastCategory
	}

	if !l.HasCategory(name) {
		return ErrUnknownCategory
	}

	if mergeTarget != "" {
		if mergeTarget == name || !l.HasCategory(mergeTarget) {
			return ErrBadMergeTarget
		}
	}

	updated := l.records[:0:0]

	for _, r := range l.records {
		if r.Category == name {
			if mergeTarget == "" {
				continue
			}

			r.Category = mergeTarget
		}

		updated = append(updated, r)
	}

	if err := l.ReplaceAll(updated); err != nil {
		return err
	}

	remaining := l.categories[:0:0]

	for _, c := range l.categories {
		if c != name {
			remaining = append(remaining, c)
		}
	}

	l.categories = remaining

	return l.db.SaveCategories(l.categories)
}
