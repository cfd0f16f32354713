// Package store connects to the data store and persists the session ledger
// and category list.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/zaotai/hearth/internal/models"
)

var errHearthRunning = errors.New(
	"is Hearth already running? Only one instance can be active at a time",
)

const ledgerBucket = "ledger"

var (
	recordsKey    = []byte("records")
	categoriesKey = []byte("categories")
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) get(key []byte) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(ledgerBucket)).Get(key)
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}

		return nil
	})

	return value, err
}

func (c *Client) put(key, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(ledgerBucket)).Put(key, value)
	})
}

// LoadRecords reads the persisted ledger. Malformed data is recovered
// locally: an unreadable payload yields an empty ledger, and individual
// entries that fail validation are dropped so that downstream aggregation
// can assume well-formed collections.
func (c *Client) LoadRecords() ([]models.Record, error) {
	value, err := c.get(recordsKey)
	if err != nil {
		return nil, err
	}

	if len(value) == 0 {
		return nil, nil
	}

	var records []models.Record

	if err := json.Unmarshal(value, &records); err != nil {
		slog.Warn("discarding corrupt record data", slog.Any("error", err))
		return nil, nil
	}

	valid := records[:0]

	for _, r := range records {
		if !r.Valid() {
			slog.Warn("dropping malformed record", slog.String("id", r.ID))
			continue
		}

		valid = append(valid, r)
	}

	return valid, nil
}

func (c *Client) SaveRecords(records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	value, err := json.Marshal(records)
	if err != nil {
		return err
	}

	return c.put(recordsKey, value)
}

// LoadCategories reads the persisted category list, substituting nil for
// missing or corrupt data.
func (c *Client) LoadCategories() ([]string, error) {
	value, err := c.get(categoriesKey)
	if err != nil {
		return nil, err
	}

	if len(value) == 0 {
		return nil, nil
	}

	var categories []string

	if err := json.Unmarshal(value, &categories); err != nil {
		slog.Warn("discarding corrupt category data", slog.Any("error", err))
		return nil, nil
	}

	return categories, nil
}

func (c *Client) SaveCategories(categories []string) error {
	if categories == nil {
		categories = []string{}
	}

	value, err := json.Marshal(categories)
	if err != nil {
		return err
	}

	return c.put(categoriesKey, value)
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errHearthRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(ledgerBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
