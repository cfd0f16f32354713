package store

import "github.com/zaotai/hearth/internal/models"

// DB is the durable storage interface. It exposes the two logical
// collections Hearth persists: the record ledger and the category list.
type DB interface {
	// LoadRecords returns the persisted records. Missing or corrupt data
	// yields an empty slice, never an error the caller must handle as
	// fatal.
	LoadRecords() ([]models.Record, error)
	// SaveRecords overwrites the persisted records.
	SaveRecords(records []models.Record) error
	// LoadCategories returns the persisted category list. Missing or
	// corrupt data yields nil.
	LoadCategories() ([]string, error)
	// SaveCategories overwrites the persisted category list.
	SaveCategories(categories []string) error
	// Close ends the database connection
	Close() error
}
