// Package rules derives association rules from frequent itemsets and scores
// them with the standard interestingness measures.
//
// 🚀 What is an association rule?
//
//	A statement "if a basket contains A, it tends to contain C", written
//	A → C, where A (antecedent) and C (consequent) are disjoint itemsets.
//	Every frequent itemset of size ≥ 2 yields one rule per nonempty proper
//	subset chosen as the antecedent.
//
// ✨ Measures computed per rule (supports are transaction fractions):
//   - support     = supp(A∪C)
//   - confidence  = supp(A∪C) / supp(A)
//   - lift        = confidence / supp(C)
//   - cosine      = supp(A∪C) / √(supp(A)·supp(C))
//   - jaccard     = supp(A∪C) / (supp(A)+supp(C)−supp(A∪C))
//   - rule power factor = supp(A∪C) · confidence
//
// ⚙️ Usage:
//
//	freq, _ := apriori.Mine(ds, apriori.DefaultOptions())
//	rs, err := rules.Generate(freq, rules.DefaultOptions())
//
// Generation is deterministic: rules are sorted by the configured metric,
// ties broken by antecedent then consequent ids.
package rules
