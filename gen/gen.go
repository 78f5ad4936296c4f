package gen

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/basket/dataset"
)

var (
	// ErrTooFewItems indicates the vocabulary size is below 1.
	ErrTooFewItems = errors.New("gen: items must be >= 1")
	// ErrTooFewTx indicates the transaction count is below 1.
	ErrTooFewTx = errors.New("gen: txns must be >= 1")
	// ErrBadBasketSize indicates an invalid [minLen, maxLen] range.
	ErrBadBasketSize = errors.New("gen: need 1 <= minLen <= maxLen <= items")
	// ErrBadPattern indicates the planted itemset is empty, unsorted,
	// duplicated, or outside the vocabulary.
	ErrBadPattern = errors.New("gen: pattern must be unique ascending ids within items")
	// ErrBadPlantSupport indicates the planted support is outside (0, 1].
	ErrBadPlantSupport = errors.New("gen: patternSupport must be in (0, 1]")
)

// genEpoch anchors synthetic purchase dates; one day per transaction.
var genEpoch = time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC)

// Random builds a dataset of txns baskets over a synthetic vocabulary of
// `items` products ("item_000", "item_001", …). Each basket draws a uniform
// size in [minLen, maxLen] and that many distinct items.
//
// Determinism: same arguments and seed ⇒ identical dataset.
//
// Complexity: O(items + txns · maxLen · log) time.
func Random(items, txns, minLen, maxLen int, seed int64) (*dataset.Dataset, error) {
	if err := validateShape(items, txns, minLen, maxLen); err != nil {
		return nil, err
	}

	rng := rngFromSeed(seed)
	vocab := makeVocab(items)
	perm := make([]int, items)

	tx := make([]dataset.Transaction, txns)
	for i := 0; i < txns; i++ {
		resetPerm(perm)
		size := minLen + rng.Intn(maxLen-minLen+1)
		basket := append([]int(nil), sampleDistinct(perm, size, rng)...)
		sort.Ints(basket)

		tx[i] = dataset.Transaction{
			Member: fmt.Sprintf("m%05d", i),
			Date:   genEpoch.AddDate(0, 0, i),
			Items:  basket,
		}
	}

	return dataset.New(vocab, tx)
}

// Planted is Random plus a known pattern: the given itemset is merged into
// ceil(patternSupport·txns) baskets (deterministically chosen), so the
// pattern's final support is at least patternSupport.
//
// Useful for mining tests: Mine must report the pattern with support ≥
// patternSupport when MinSupport ≤ patternSupport.
func Planted(items, txns int, pattern []int, patternSupport float64, minLen, maxLen int, seed int64) (*dataset.Dataset, error) {
	if err := validateShape(items, txns, minLen, maxLen); err != nil {
		return nil, err
	}
	if patternSupport <= 0 || patternSupport > 1 {
		return nil, ErrBadPlantSupport
	}
	if len(pattern) == 0 {
		return nil, ErrBadPattern
	}
	for i, id := range pattern {
		if id < 0 || id >= items {
			return nil, ErrBadPattern
		}
		if i > 0 && pattern[i-1] >= id {
			return nil, ErrBadPattern
		}
	}

	base, err := Random(items, txns, minLen, maxLen, seed)
	if err != nil {
		return nil, err
	}

	// Choose host baskets deterministically from a seeded permutation.
	rng := rngFromSeed(seed)
	hosts := make([]int, txns)
	resetPerm(hosts)
	n := int(math.Ceil(patternSupport * float64(txns)))
	for _, idx := range sampleDistinct(hosts, n, rng) {
		base.Tx[idx].Items = mergeSorted(base.Tx[idx].Items, pattern)
	}

	// Rebuild through the constructor so invariants are re-checked.
	return dataset.New(base.Vocab, base.Tx)
}

// validateShape guards the common generator parameters.
func validateShape(items, txns, minLen, maxLen int) error {
	if items < 1 {
		return ErrTooFewItems
	}
	if txns < 1 {
		return ErrTooFewTx
	}
	if minLen < 1 || minLen > maxLen || maxLen > items {
		return ErrBadBasketSize
	}

	return nil
}

// makeVocab names items with a stable zero-padded scheme.
func makeVocab(items int) []string {
	vocab := make([]string, items)
	for i := range vocab {
		vocab[i] = fmt.Sprintf("item_%03d", i)
	}

	return vocab
}

// resetPerm fills p with the identity permutation 0..len(p)-1.
func resetPerm(p []int) {
	for i := range p {
		p[i] = i
	}
}

// mergeSorted unions two ascending unique id slices into a fresh slice.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
