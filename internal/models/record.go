// Package models defines the persisted data types shared across Hearth.
package models

import "time"

// Record is one completed, recordable focus session. Records are owned by
// the ledger for their entire lifetime and are only ever rewritten through
// ledger operations.
type Record struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration"`
	// TimestampMillis is the session start time in epoch milliseconds,
	// not the completion time.
	TimestampMillis int64  `json:"timestamp"`
	ActivityName    string `json:"activity"`
}

// StartTime returns the record's start time as a local wall-clock value.
func (r Record) StartTime() time.Time {
	return time.UnixMilli(r.TimestampMillis)
}

// EndTime returns the start time advanced by the record duration.
func (r Record) EndTime() time.Time {
	return r.StartTime().Add(time.Duration(r.DurationMinutes) * time.Minute)
}

// Valid reports whether a record loaded from storage is well-formed enough
// for aggregation to rely on it.
func (r Record) Valid() bool {
	return r.ID != "" && r.Category != "" && r.DurationMinutes >= 0 &&
		r.TimestampMillis > 0
}
