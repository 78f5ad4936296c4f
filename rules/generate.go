package rules

import (
	"math"
	"sort"

	"github.com/katalvlaran/basket/apriori"
)

// Generate derives scored rules from a complete frequent-itemset list.
//
// Algorithm Outline:
//  1. Index every frequent itemset by its key for O(1) support lookups.
//  2. For each itemset of size k ≥ 2, walk the 2^k−2 nonempty proper
//     subsets in ascending bitmask order; the subset is the antecedent,
//     the complement the consequent.
//  3. Score each split from three supports (A∪C, A, C) and keep rules
//     passing the confidence/lift thresholds.
//  4. Stable-sort by the configured metric; ties break by antecedent,
//     then consequent ids, so output order is fully deterministic.
//
// Contracts:
//   - freq must contain every subset of every listed itemset (any complete
//     Apriori output satisfies this); a missing subset is ErrInconsistent.
//
// Errors: ErrBadConfidence, ErrBadLift, ErrBadSortKey, ErrInconsistent.
//
// Complexity: O(Σ 2^k · k) generation + O(R log R) sort for R rules.
func Generate(freq []apriori.Frequent, opts Options) ([]Rule, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	supports := make(map[string]float64, len(freq))
	for _, f := range freq {
		supports[f.Items.Key()] = f.Support
	}

	var out []Rule
	for _, f := range freq {
		k := len(f.Items)
		if k < 2 {
			continue
		}

		for mask := 1; mask < (1<<k)-1; mask++ {
			ant := make(apriori.Itemset, 0, k-1)
			con := make(apriori.Itemset, 0, k-1)
			for i, id := range f.Items {
				if mask&(1<<i) != 0 {
					ant = append(ant, id)
				} else {
					con = append(con, id)
				}
			}

			suppA, ok := supports[ant.Key()]
			if !ok {
				return nil, ErrInconsistent
			}
			suppC, ok := supports[con.Key()]
			if !ok {
				return nil, ErrInconsistent
			}

			r := score(ant, con, f.Count, f.Support, suppA, suppC)
			if r.Confidence < opts.MinConfidence || r.Lift < opts.MinLift {
				continue
			}
			out = append(out, r)
		}
	}

	sortRules(out, opts.SortBy, opts.Ascending)

	return out, nil
}

// score computes every interestingness measure for one antecedent split.
// suppA and suppC are positive by construction (both itemsets are frequent).
func score(ant, con apriori.Itemset, count int, suppAC, suppA, suppC float64) Rule {
	conf := suppAC / suppA

	return Rule{
		Antecedent: ant,
		Consequent: con,
		Count:      count,
		Support:    suppAC,
		AntSupport: suppA,
		ConSupport: suppC,
		Confidence: conf,
		Lift:       conf / suppC,
		Cosine:     suppAC / math.Sqrt(suppA*suppC),
		Jaccard:    suppAC / (suppA + suppC - suppAC),
		RPF:        suppAC * conf,
	}
}

// sortRules orders rules by the chosen metric with deterministic tie-breaks.
func sortRules(rs []Rule, key SortKey, ascending bool) {
	metric := func(r Rule) float64 {
		switch key {
		case BySupport:
			return r.Support
		case ByLift:
			return r.Lift
		case ByCosine:
			return r.Cosine
		case ByJaccard:
			return r.Jaccard
		case ByRPF:
			return r.RPF
		default:
			return r.Confidence
		}
	}

	sort.SliceStable(rs, func(i, j int) bool {
		a, b := metric(rs[i]), metric(rs[j])
		if a != b {
			if ascending {
				return a < b
			}

			return a > b
		}
		if c := compareItemsets(rs[i].Antecedent, rs[j].Antecedent); c != 0 {
			return c < 0
		}

		return compareItemsets(rs[i].Consequent, rs[j].Consequent) < 0
	})
}

// compareItemsets orders itemsets lexicographically by ids.
func compareItemsets(a, b apriori.Itemset) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return len(a) - len(b)
}
