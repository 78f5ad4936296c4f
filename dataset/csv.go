package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// LoadCSV reads a purchase log and reshapes it into transactions.
//
// Algorithm Outline:
//  1. Read the header row and locate the member/date/item columns
//     (names are matched after trimming whitespace).
//  2. For each data row: trim cells, skip rows with an empty item,
//     parse the date with the configured layout.
//  3. Group rows by (member, date); duplicate items inside one basket
//     collapse to a single occurrence.
//  4. Assign dense vocabulary ids in first-seen input order.
//  5. Emit transactions sorted by member, then date; items inside each
//     basket sorted by id.
//
// Errors:
//   - ErrEmptyInput    — no header or no usable data rows.
//   - ErrMissingColumn — a configured column is absent from the header.
//   - ErrBadDate       — a date cell does not match the layout.
//
// Complexity: O(R log T) for R rows and T transactions; memory O(R).
func LoadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		// io.EOF on the very first read means an empty file.
		if err == io.EOF {
			return nil, ErrEmptyInput
		}

		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	memberIdx, dateIdx, itemIdx := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case o.memberColumn:
			memberIdx = i
		case o.dateColumn:
			dateIdx = i
		case o.itemColumn:
			itemIdx = i
		}
	}
	if memberIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, o.memberColumn)
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, o.dateColumn)
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, o.itemColumn)
	}

	var (
		vocab   []string
		index   = make(map[string]int)
		baskets = make(map[string]*Transaction) // key: member \x00 date
		rows    int
	)

	for {
		rec, rerr := cr.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("dataset: read row: %w", rerr)
		}

		item := strings.TrimSpace(rec[itemIdx])
		if item == "" {
			continue // blank item cells carry no basket information
		}
		member := strings.TrimSpace(rec[memberIdx])
		rawDate := strings.TrimSpace(rec[dateIdx])

		date, perr := parseDate(rawDate, o.dateLayout)
		if perr != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadDate, rawDate)
		}
		rows++

		id, ok := index[item]
		if !ok {
			id = len(vocab)
			index[item] = id
			vocab = append(vocab, item)
		}

		// Key on the parsed date: unpadded layouts accept "5-1-2015" and
		// "05-1-2015" for the same day, and both must land in one basket.
		key := member + "\x00" + date.Format(time.RFC3339)
		tx, ok := baskets[key]
		if !ok {
			tx = &Transaction{Member: member, Date: date}
			baskets[key] = tx
		}
		tx.Items = append(tx.Items, id)
	}

	if rows == 0 {
		return nil, ErrEmptyInput
	}

	// Collapse duplicates inside each basket and freeze deterministic order.
	out := make([]Transaction, 0, len(baskets))
	for _, tx := range baskets {
		sort.Ints(tx.Items)
		tx.Items = dedupSorted(tx.Items)
		out = append(out, *tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Member != out[j].Member {
			return out[i].Member < out[j].Member
		}

		return out[i].Date.Before(out[j].Date)
	})

	return &Dataset{Vocab: vocab, Tx: out, rows: rows, index: index}, nil
}

// ReadFile is a convenience wrapper around LoadCSV for a file on disk.
func ReadFile(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %q: %w", path, err)
	}
	defer f.Close()

	return LoadCSV(f, opts...)
}

// New builds a Dataset programmatically (synthetic fixtures, tests).
//
// Contract:
//   - every transaction's Items must be strictly ascending ids in
//     [0, len(vocab)); violations return ErrBadBasket.
//   - empty tx or vocab returns ErrEmptyInput.
//
// Transactions are re-sorted by member, then date, to match LoadCSV.
func New(vocab []string, tx []Transaction) (*Dataset, error) {
	if len(vocab) == 0 || len(tx) == 0 {
		return nil, ErrEmptyInput
	}

	rows := 0
	for _, t := range tx {
		if len(t.Items) == 0 {
			return nil, ErrBadBasket
		}
		for i, id := range t.Items {
			if id < 0 || id >= len(vocab) {
				return nil, ErrBadBasket
			}
			if i > 0 && t.Items[i-1] >= id {
				return nil, ErrBadBasket
			}
		}
		rows += len(t.Items)
	}

	index := make(map[string]int, len(vocab))
	for id, name := range vocab {
		index[name] = id
	}

	sorted := make([]Transaction, len(tx))
	copy(sorted, tx)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Member != sorted[j].Member {
			return sorted[i].Member < sorted[j].Member
		}

		return sorted[i].Date.Before(sorted[j].Date)
	})

	return &Dataset{Vocab: vocab, Tx: sorted, rows: rows, index: index}, nil
}

// parseDate parses a date cell with the configured layout.
func parseDate(cell, layout string) (time.Time, error) {
	return time.Parse(layout, cell)
}

// dedupSorted removes adjacent duplicates from an ascending id slice in place.
func dedupSorted(a []int) []int {
	if len(a) < 2 {
		return a
	}
	w := 1
	for i := 1; i < len(a); i++ {
		if a[i] != a[w-1] {
			a[w] = a[i]
			w++
		}
	}

	return a[:w]
}
