// Package apriori mines frequent itemsets from market-basket transactions
// using the classic level-wise Apriori algorithm.
//
// 🚀 What is Apriori?
//
//	Apriori finds every set of items that appears together in at least a
//	minimum fraction of transactions (the support threshold). It works
//	level by level: frequent single items seed frequent pairs, frequent
//	pairs seed frequent triples, and so on. The search is safe to prune
//	aggressively because support is anti-monotone: no superset of an
//	infrequent itemset can ever be frequent.
//
// ✨ Key features:
//   - F(k−1)×F(k−1) candidate join on a shared (k−2)-prefix
//   - subset pruning before any counting work is spent
//   - parallel support counting across transaction shards (Workers > 1)
//     with a deterministic merge — results never depend on scheduling
//   - bounded search via MaxLen, unbounded when 0
//
// ⚙️ Usage:
//
//	opts := apriori.DefaultOptions()
//	opts.MinSupport = 0.01
//	freq, err := apriori.Mine(ds, opts)
//
// Performance:
//
//   - Time:   O(Σ_k |C_k| · T · k̄) for candidate sets C_k over T transactions
//   - Memory: O(|C_k| + output)
//
// Output order is deterministic: ascending itemset length, then
// lexicographic vocabulary ids.
package apriori
