// Package basket is your in-memory toolkit for market-basket analysis —
// from raw purchase records to frequent itemsets, association rules and
// their interestingness measures.
//
// 🚀 What is basket?
//
//	A small, deterministic library that brings together:
//		• Ingestion: CSV purchase logs reshaped into (member, date) transactions
//		• Descriptive statistics: basket sizes, item frequencies, top-N items
//		• Mining: Apriori frequent-itemset search with level-wise pruning
//		• Rules: antecedent→consequent generation with support, confidence,
//		  lift, cosine, Jaccard and rule power factor
//		• Persistence: mined runs stored in SQLite for later comparison
//
// ✨ Why choose basket?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same data, same options, same output, every run
//   - Reproducible experiments – seeded synthetic generators for fixtures
//   - Honest errors – sentinel errors everywhere, no panics on user input
//
// Under the hood, everything is organized in small subpackages:
//
//	dataset/ — CSV ingestion, transaction reshaping & descriptive statistics
//	apriori/ — level-wise frequent-itemset mining
//	rules/   — association-rule generation & interestingness measures
//	gen/     — deterministic synthetic basket generators (tests, benchmarks)
//	store/   — SQLite persistence of mined runs
//	report/  — markdown tables for stats, itemsets and rules
//	config/  — YAML run configuration for the CLI
//
// Quick pipeline sketch:
//
//	CSV ──► dataset.LoadCSV ──► apriori.Mine ──► rules.Generate ──► report
//
// Dive into cmd/basket for the command-line front end and the example
// tests in each package for runnable walkthroughs.
//
//	go get github.com/katalvlaran/basket
package basket
