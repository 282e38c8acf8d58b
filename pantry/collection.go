package pantry

import (
	"errors"
	"fmt"

	"github.com/smartpantry/pantry/storage"
)

// ErrNotFound is returned when an id does not match any record.
var ErrNotFound = errors.New("record not found")

// Record is what a collection stores: anything with an identity and a
// validity check.
type Record interface {
	RecordID() string
	Validate() error
}

// Collection is one named set of records persisted as a single JSON
// blob under a fixed storage key. Every mutation validates the record,
// applies it in memory, and rewrites the whole collection, so the store
// and the loaded state never diverge. Insertion order is preserved; it
// is the final tie-break of the inventory sort.
type Collection[T Record] struct {
	kv  storage.KV
	key string
}

// NewCollection binds a collection to its storage key.
func NewCollection[T Record](kv storage.KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// LoadAll reads the collection. Absent or malformed stored data yields
// an empty collection, never an error the user sees.
func (c *Collection[T]) LoadAll() ([]T, error) {
	var records []T
	ok, err := storage.GetJSON(c.kv, c.key, &records)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok {
		return nil, nil
	}
	return records, nil
}

// SaveAll replaces the stored collection wholesale.
func (c *Collection[T]) SaveAll(records []T) error {
	if records == nil {
		records = []T{}
	}
	if err := storage.SetJSON(c.kv, c.key, records); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	var zero T
	records, err := c.LoadAll()
	if err != nil {
		return zero, err
	}
	for _, r := range records {
		if r.RecordID() == id {
			return r, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
}

// Add validates and appends a record. The caller assigns the id; Add
// rejects empty ids and duplicates.
func (c *Collection[T]) Add(record T) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if record.RecordID() == "" {
		return fmt.Errorf("add to %s: record has no id", c.key)
	}

	records, err := c.LoadAll()
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.RecordID() == record.RecordID() {
			return fmt.Errorf("add to %s: id %q already present", c.key, record.RecordID())
		}
	}
	return c.SaveAll(append(records, record))
}

// Update replaces the record with the given id in place, keeping its
// position in the collection. The replacement must carry the same id.
func (c *Collection[T]) Update(id string, record T) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if record.RecordID() != id {
		return fmt.Errorf("update %s: id mismatch (%q vs %q)", c.key, record.RecordID(), id)
	}

	records, err := c.LoadAll()
	if err != nil {
		return err
	}
	for i, r := range records {
		if r.RecordID() == id {
			records[i] = record
			return c.SaveAll(records)
		}
	}
	return fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
}

// Remove deletes the record with the given id.
func (c *Collection[T]) Remove(id string) error {
	records, err := c.LoadAll()
	if err != nil {
		return err
	}
	for i, r := range records {
		if r.RecordID() == id {
			return c.SaveAll(append(records[:i], records[i+1:]...))
		}
	}
	return fmt.Errorf("%s %q: %w", c.key, id, ErrNotFound)
}

// EnsureSeeded populates an empty collection with defaults, exactly
// once. A collection that already has records is left alone; defaults
// are never merged into existing data.
func (c *Collection[T]) EnsureSeeded(defaults []T) error {
	records, err := c.LoadAll()
	if err != nil {
		return err
	}
	if len(records) > 0 {
		return nil
	}
	return c.SaveAll(defaults)
}
