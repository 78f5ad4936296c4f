// Package dataset loads grocery-style purchase logs and reshapes them into
// market-basket transactions ready for mining.
//
// 🚀 What is a transaction here?
//
//	One shopping basket: every item a member bought on a given date.
//	The raw input is a flat CSV of (member, date, item) rows; rows sharing
//	the same member and date collapse into a single transaction, and
//	duplicate items inside a basket are counted once.
//
// ✨ Key features:
//   - header-aware CSV ingestion with configurable column names
//   - configurable delimiter and date layout (defaults match the classic
//     Groceries dataset: Member_number, Date, itemDescription, dd-mm-yyyy)
//   - dense integer vocabulary: every distinct item gets a stable id
//   - descriptive statistics: basket-size distribution, item frequencies
//
// ⚙️ Usage:
//
//	ds, err := dataset.ReadFile("groceries.csv")
//	if err != nil { ... }
//	st := ds.Stats()
//	top := ds.TopItems(10)
//
// All loading is one-shot and synchronous; a Dataset is immutable after
// construction and safe for concurrent readers.
package dataset
