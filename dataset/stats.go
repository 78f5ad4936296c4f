package dataset

import "sort"

// Stats summarizes the shape of a Dataset: how many baskets, how big they
// are, and how the item vocabulary is spread across them.
type Stats struct {
	Rows         int // raw data rows consumed
	Transactions int // distinct (member, date) baskets
	UniqueItems  int // vocabulary size
	Occurrences  int // total item occurrences after dedup

	MinSize    int
	MaxSize    int
	MeanSize   float64
	MedianSize float64
}

// ItemCount is one row of an item-frequency ranking.
type ItemCount struct {
	Item    string
	Count   int     // transactions containing the item
	Support float64 // Count / Transactions
}

// Stats computes descriptive statistics in one pass over the transactions.
//
// Complexity: O(T log T) for T transactions (median needs sorted sizes).
func (d *Dataset) Stats() Stats {
	st := Stats{
		Rows:         d.rows,
		Transactions: len(d.Tx),
		UniqueItems:  len(d.Vocab),
	}
	if len(d.Tx) == 0 {
		return st
	}

	sizes := make([]int, len(d.Tx))
	total := 0
	st.MinSize = len(d.Tx[0].Items)
	for i, tx := range d.Tx {
		n := len(tx.Items)
		sizes[i] = n
		total += n
		if n < st.MinSize {
			st.MinSize = n
		}
		if n > st.MaxSize {
			st.MaxSize = n
		}
	}
	st.Occurrences = total
	st.MeanSize = float64(total) / float64(len(sizes))

	sort.Ints(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 1 {
		st.MedianSize = float64(sizes[mid])
	} else {
		st.MedianSize = float64(sizes[mid-1]+sizes[mid]) / 2
	}

	return st
}

// ItemCounts returns per-item transaction counts indexed by vocabulary id.
func (d *Dataset) ItemCounts() []int {
	counts := make([]int, len(d.Vocab))
	for _, tx := range d.Tx {
		for _, id := range tx.Items {
			counts[id]++
		}
	}

	return counts
}

// TopItems ranks items by transaction count, descending; ties break by
// item name ascending so the ranking is deterministic. n ≤ 0 or n larger
// than the vocabulary returns every item.
func (d *Dataset) TopItems(n int) []ItemCount {
	counts := d.ItemCounts()
	out := make([]ItemCount, len(counts))
	for id, c := range counts {
		out[id] = ItemCount{
			Item:    d.Vocab[id],
			Count:   c,
			Support: float64(c) / float64(max(len(d.Tx), 1)),
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Item < out[j].Item
	})

	if n <= 0 || n > len(out) {
		return out
	}

	return out[:n]
}
