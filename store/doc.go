// Package store persists mined runs — parameters, frequent itemsets and
// scored rules — in a local SQLite database, so successive mining runs over
// the same data can be listed and compared.
//
// The database is opened in WAL mode with a busy timeout; a Store is safe
// for concurrent use within one process. Itemsets are stored as JSON arrays
// of item names, so names round-trip unchanged whatever characters they use.
package store
