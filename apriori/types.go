package apriori

import (
	"errors"
	"strconv"
)

var (
	// ErrNoTransactions indicates the dataset holds no transactions.
	ErrNoTransactions = errors.New("apriori: dataset has no transactions")
	// ErrBadSupport indicates MinSupport is outside (0, 1].
	ErrBadSupport = errors.New("apriori: MinSupport must be in (0, 1]")
	// ErrBadMaxLen indicates MaxLen is negative (0 means unbounded).
	ErrBadMaxLen = errors.New("apriori: MaxLen must be >= 0")
	// ErrBadWorkers indicates Workers is negative (0 means single-threaded).
	ErrBadWorkers = errors.New("apriori: Workers must be >= 0")
)

// Itemset is a set of vocabulary ids, strictly ascending.
type Itemset []int

// Key encodes the itemset as a compact string usable as a map key.
// Two itemsets share a Key iff they contain the same ids.
func (s Itemset) Key() string {
	if len(s) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(s)*4)
	for i, id := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}

	return string(buf)
}

// Contains reports whether s (ascending) is a subset of basket (ascending).
// Two-pointer scan; O(len(s)+len(basket)).
func (s Itemset) Contains(basket []int) bool {
	i, j := 0, 0
	for i < len(s) && j < len(basket) {
		switch {
		case s[i] == basket[j]:
			i++
			j++
		case s[i] > basket[j]:
			j++
		default:
			return false
		}
	}

	return i == len(s)
}

// Frequent is one mined itemset with its observed frequency.
type Frequent struct {
	Items   Itemset
	Count   int     // transactions containing Items
	Support float64 // Count / total transactions
}

// Options configures Mine.
//
// Fields:
//   - MinSupport — minimum fraction of transactions, in (0, 1].
//   - MaxLen     — largest itemset size to mine; 0 means unbounded.
//   - Workers    — goroutines for support counting; 0 or 1 means
//     single-threaded. Output is identical either way.
type Options struct {
	MinSupport float64
	MaxLen     int
	Workers    int
}

// DefaultOptions returns the documented defaults: 1% support, unbounded
// length, single-threaded counting.
func DefaultOptions() Options {
	return Options{MinSupport: 0.01, MaxLen: 0, Workers: 0}
}

// validate checks Options consistency; only sentinels are returned.
func (o Options) validate() error {
	if o.MinSupport <= 0 || o.MinSupport > 1 {
		return ErrBadSupport
	}
	if o.MaxLen < 0 {
		return ErrBadMaxLen
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}
