package apriori

import (
	"math"
	"sort"

	"github.com/katalvlaran/basket/dataset"
)

// Mine runs level-wise Apriori over the dataset's transactions.
//
// Algorithm Outline:
//  1. Count single items; L1 = items with count ≥ ceil(MinSupport·T).
//  2. For k = 2, 3, …: join L(k−1) with itself on a shared (k−2)-prefix
//     to form candidates C_k; discard any candidate with an infrequent
//     (k−1)-subset (anti-monotonicity).
//  3. Count each candidate's support over all transactions, in parallel
//     shards when opts.Workers > 1; keep those meeting the threshold.
//  4. Stop when L_k is empty or k reaches opts.MaxLen.
//
// Contracts:
//   - ds must be non-nil with at least one transaction.
//   - Output is sorted by itemset length, then lexicographic ids, and is
//     identical for any Workers value.
//
// Errors: ErrNoTransactions, ErrBadSupport, ErrBadMaxLen, ErrBadWorkers.
//
// Complexity: O(Σ_k |C_k|·T·k̄) time; O(|C_k| + output) memory.
func Mine(ds *dataset.Dataset, opts Options) ([]Frequent, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if ds == nil || len(ds.Tx) == 0 {
		return nil, ErrNoTransactions
	}

	total := len(ds.Tx)
	// Smallest absolute count satisfying the fractional threshold.
	minCount := int(math.Ceil(opts.MinSupport * float64(total)))
	if minCount < 1 {
		minCount = 1
	}

	// Level 1: plain per-item counting.
	counts := make([]int, len(ds.Vocab))
	for _, tx := range ds.Tx {
		for _, id := range tx.Items {
			counts[id]++
		}
	}
	var level []Frequent
	for id, c := range counts {
		if c >= minCount {
			level = append(level, Frequent{
				Items:   Itemset{id},
				Count:   c,
				Support: float64(c) / float64(total),
			})
		}
	}

	var out []Frequent
	out = append(out, level...)

	for k := 2; len(level) > 0 && (opts.MaxLen == 0 || k <= opts.MaxLen); k++ {
		cands := generateCandidates(level)
		if len(cands) == 0 {
			break
		}

		candCounts, err := countCandidates(ds.Tx, cands, opts.Workers)
		if err != nil {
			return nil, err
		}

		next := level[:0:0]
		for i, cand := range cands {
			if candCounts[i] >= minCount {
				next = append(next, Frequent{
					Items:   cand,
					Count:   candCounts[i],
					Support: float64(candCounts[i]) / float64(total),
				})
			}
		}
		out = append(out, next...)
		level = next
	}

	return out, nil
}

// generateCandidates joins a frequent level with itself and prunes.
//
// Join rule: two k−1 itemsets sharing their first k−2 ids produce one
// k-candidate; the level is kept lexicographically sorted, so produced
// candidates are sorted too. Prune rule: every (k−1)-subset of a candidate
// must itself be frequent, checked against a key set of the level.
//
// Complexity: O(|L|² · k) worst case; the shared-prefix join keeps the
// practical cost near O(|L| · b · k) for prefix-block size b.
func generateCandidates(level []Frequent) []Itemset {
	seen := make(map[string]struct{}, len(level))
	for _, f := range level {
		seen[f.Items.Key()] = struct{}{}
	}

	k := len(level[0].Items) + 1
	var cands []Itemset
	sub := make(Itemset, k-1)

	for i := 0; i < len(level); i++ {
		a := level[i].Items
		for j := i + 1; j < len(level); j++ {
			b := level[j].Items
			if !samePrefix(a, b) {
				break // level is sorted; no later b shares the prefix
			}

			cand := make(Itemset, 0, k)
			cand = append(cand, a...)
			if b[k-2] < a[k-2] {
				continue // keep ids ascending; join only forward
			}
			cand = append(cand, b[k-2])

			if hasInfrequentSubset(cand, sub, seen) {
				continue
			}
			cands = append(cands, cand)
		}
	}

	sort.Slice(cands, func(i, j int) bool { return lessItemset(cands[i], cands[j]) })

	return cands
}

// samePrefix reports whether a and b agree on all but their last id.
func samePrefix(a, b Itemset) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// hasInfrequentSubset checks every (k−1)-subset of cand against seen,
// reusing sub as scratch to avoid per-call allocations.
func hasInfrequentSubset(cand, sub Itemset, seen map[string]struct{}) bool {
	for drop := 0; drop < len(cand); drop++ {
		sub = sub[:0]
		for i, id := range cand {
			if i != drop {
				sub = append(sub, id)
			}
		}
		if _, ok := seen[sub.Key()]; !ok {
			return true
		}
	}

	return false
}

// lessItemset orders itemsets lexicographically by ids.
func lessItemset(a, b Itemset) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
