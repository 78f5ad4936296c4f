package dataset

import (
	"errors"
	"time"
)

var (
	// ErrEmptyInput indicates the CSV had no header or no data rows.
	ErrEmptyInput = errors.New("dataset: input contains no data rows")
	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("dataset: required column not found in header")
	// ErrBadDate indicates a date cell did not match the configured layout.
	ErrBadDate = errors.New("dataset: date does not match layout")
	// ErrBadBasket indicates a programmatic basket violates vocabulary bounds
	// or ordering (New only; CSV ingestion cannot produce it).
	ErrBadBasket = errors.New("dataset: basket items must be unique, ascending, in-vocabulary")
)

// Transaction is one shopping basket: everything a member bought on a date.
// Items are vocabulary ids, strictly ascending, duplicates collapsed.
type Transaction struct {
	Member string
	Date   time.Time
	Items  []int
}

// Dataset is the reshaped incidence view of a purchase log: a stable item
// vocabulary plus one Transaction per (member, date) pair.
//
// A Dataset is immutable after construction; methods never mutate it.
type Dataset struct {
	// Vocab maps item id → item name. Ids are dense, 0..len(Vocab)-1,
	// assigned in first-seen input order.
	Vocab []string

	// Tx holds all transactions in deterministic order: by member id,
	// then by date, both ascending.
	Tx []Transaction

	rows  int            // raw data rows consumed (before collapsing)
	index map[string]int // item name → id
}

// Len returns the number of transactions.
func (d *Dataset) Len() int { return len(d.Tx) }

// Rows returns the number of raw data rows the Dataset was built from.
func (d *Dataset) Rows() int { return d.rows }

// ItemName returns the name for a vocabulary id, or "" when out of range.
func (d *Dataset) ItemName(id int) string {
	if id < 0 || id >= len(d.Vocab) {
		return ""
	}

	return d.Vocab[id]
}

// ItemID returns the vocabulary id for an item name.
func (d *Dataset) ItemID(name string) (int, bool) {
	id, ok := d.index[name]

	return id, ok
}

// Names maps a slice of vocabulary ids to item names, preserving order.
// Unknown ids map to "".
func (d *Dataset) Names(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = d.ItemName(id)
	}

	return out
}
