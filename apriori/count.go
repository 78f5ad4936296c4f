package apriori

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/basket/dataset"
)

// countCandidates computes, for every candidate, the number of transactions
// containing it.
//
// When workers ≤ 1 the scan is a plain loop. Otherwise transactions are
// split into `workers` contiguous shards; each shard counts into its own
// local slice and the shards are summed afterwards, so the result is
// bit-identical to the sequential path regardless of scheduling.
//
// Complexity: O(|cands| · T · k̄) time; O(workers · |cands|) extra memory.
func countCandidates(tx []dataset.Transaction, cands []Itemset, workers int) ([]int, error) {
	if workers <= 1 || len(tx) < workers {
		counts := make([]int, len(cands))
		countShard(tx, cands, counts)

		return counts, nil
	}

	locals := make([][]int, workers)
	var g errgroup.Group

	shard := (len(tx) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := lo + shard
		if hi > len(tx) {
			hi = len(tx)
		}
		if lo >= hi {
			break
		}

		w := w
		locals[w] = make([]int, len(cands))
		g.Go(func() error {
			countShard(tx[lo:hi], cands, locals[w])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Deterministic merge: plain sums in shard order.
	counts := make([]int, len(cands))
	for _, local := range locals {
		for i, c := range local {
			counts[i] += c
		}
	}

	return counts, nil
}

// countShard accumulates candidate occurrences over one transaction shard.
func countShard(tx []dataset.Transaction, cands []Itemset, counts []int) {
	for _, t := range tx {
		for i, cand := range cands {
			if len(cand) <= len(t.Items) && cand.Contains(t.Items) {
				counts[i]++
			}
		}
	}
}
