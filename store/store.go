package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/basket/apriori"
	"github.com/katalvlaran/basket/dataset"
	"github.com/katalvlaran/basket/rules"
)

// ErrRunNotFound indicates the requested run id is absent.
var ErrRunNotFound = errors.New("store: run not found")

// Store manages the mined-runs database.
type Store struct {
	db   *sql.DB
	path string
	mu   sync.RWMutex
}

// Run is one persisted mining run.
type Run struct {
	ID            string
	Source        string
	MinSupport    float64
	MinConfidence float64
	Transactions  int
	Itemsets      int
	Rules         int
	CreatedAt     time.Time
}

// SavedItemset is one frequent itemset as stored (item names, not ids).
type SavedItemset struct {
	Items   []string
	Count   int
	Support float64
}

// SavedRule is one scored rule as stored (item names, not ids).
type SavedRule struct {
	Antecedent []string
	Consequent []string
	Count      int
	Support    float64
	Confidence float64
	Lift       float64
	Cosine     float64
	Jaccard    float64
	RPF        float64
}

// Open creates or opens a run store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()

		return nil, fmt.Errorf("store: initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// initSchema creates the database schema.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		min_support REAL NOT NULL,
		min_confidence REAL NOT NULL,
		transactions INTEGER NOT NULL,
		itemsets INTEGER NOT NULL,
		rules INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS itemsets (
		run_id TEXT NOT NULL,
		items TEXT NOT NULL,
		length INTEGER NOT NULL,
		count INTEGER NOT NULL,
		support REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_itemsets_run ON itemsets(run_id);

	CREATE TABLE IF NOT EXISTS rules (
		run_id TEXT NOT NULL,
		antecedent TEXT NOT NULL,
		consequent TEXT NOT NULL,
		count INTEGER NOT NULL,
		support REAL NOT NULL,
		confidence REAL NOT NULL,
		lift REAL NOT NULL,
		cosine REAL NOT NULL,
		jaccard REAL NOT NULL,
		rpf REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_rules_run ON rules(run_id);
	`

	_, err := s.db.Exec(schema)

	return err
}

// SaveRun persists one mining run atomically and returns its Run record.
// Itemset/rule ids are translated to item names via ds.
func (s *Store) SaveRun(ds *dataset.Dataset, source string, minSupport, minConfidence float64,
	freq []apriori.Frequent, rs []rules.Rule) (Run, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	run := Run{
		ID:            uuid.NewString(),
		Source:        source,
		MinSupport:    minSupport,
		MinConfidence: minConfidence,
		Transactions:  ds.Len(),
		Itemsets:      len(freq),
		Rules:         len(rs),
		CreatedAt:     time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Run{}, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, source, min_support, min_confidence, transactions, itemsets, rules, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.MinSupport, run.MinConfidence,
		run.Transactions, run.Itemsets, run.Rules, run.CreatedAt,
	)
	if err != nil {
		return Run{}, fmt.Errorf("store: insert run: %w", err)
	}

	insItems, err := tx.Prepare(`INSERT INTO itemsets (run_id, items, length, count, support) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("store: prepare itemsets: %w", err)
	}
	defer insItems.Close()
	for _, f := range freq {
		items, eerr := encodeNames(ds, f.Items)
		if eerr != nil {
			return Run{}, eerr
		}
		if _, err = insItems.Exec(run.ID, items, len(f.Items), f.Count, f.Support); err != nil {
			return Run{}, fmt.Errorf("store: insert itemset: %w", err)
		}
	}

	insRules, err := tx.Prepare(
		`INSERT INTO rules (run_id, antecedent, consequent, count, support, confidence, lift, cosine, jaccard, rpf)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, fmt.Errorf("store: prepare rules: %w", err)
	}
	defer insRules.Close()
	for _, r := range rs {
		ant, eerr := encodeNames(ds, r.Antecedent)
		if eerr != nil {
			return Run{}, eerr
		}
		con, eerr := encodeNames(ds, r.Consequent)
		if eerr != nil {
			return Run{}, eerr
		}
		_, err = insRules.Exec(run.ID, ant, con,
			r.Count, r.Support, r.Confidence, r.Lift, r.Cosine, r.Jaccard, r.RPF)
		if err != nil {
			return Run{}, fmt.Errorf("store: insert rule: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("store: commit: %w", err)
	}

	return run, nil
}

// ListRuns returns all persisted runs, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, source, min_support, min_confidence, transactions, itemsets, rules, created_at
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.MinSupport, &r.MinConfidence,
			&r.Transactions, &r.Itemsets, &r.Rules, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// GetRun fetches a single run by id.
func (s *Store) GetRun(id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Run
	err := s.db.QueryRow(
		`SELECT id, source, min_support, min_confidence, transactions, itemsets, rules, created_at
		 FROM runs WHERE id = ?`, id).
		Scan(&r.ID, &r.Source, &r.MinSupport, &r.MinConfidence,
			&r.Transactions, &r.Itemsets, &r.Rules, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("store: query run: %w", err)
	}

	return r, nil
}

// Itemsets returns the frequent itemsets of a run in stored order.
func (s *Store) Itemsets(runID string) ([]SavedItemset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT items, count, support FROM itemsets WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query itemsets: %w", err)
	}
	defer rows.Close()

	var out []SavedItemset
	for rows.Next() {
		var (
			items string
			it    SavedItemset
		)
		if err := rows.Scan(&items, &it.Count, &it.Support); err != nil {
			return nil, fmt.Errorf("store: scan itemset: %w", err)
		}
		if it.Items, err = decodeNames(items); err != nil {
			return nil, err
		}
		out = append(out, it)
	}

	return out, rows.Err()
}

// Rules returns the scored rules of a run in stored order.
func (s *Store) Rules(runID string) ([]SavedRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT antecedent, consequent, count, support, confidence, lift, cosine, jaccard, rpf
		 FROM rules WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query rules: %w", err)
	}
	defer rows.Close()

	var out []SavedRule
	for rows.Next() {
		var (
			ant, con string
			r        SavedRule
		)
		if err := rows.Scan(&ant, &con, &r.Count, &r.Support, &r.Confidence,
			&r.Lift, &r.Cosine, &r.Jaccard, &r.RPF); err != nil {
			return nil, fmt.Errorf("store: scan rule: %w", err)
		}
		if r.Antecedent, err = decodeNames(ant); err != nil {
			return nil, err
		}
		if r.Consequent, err = decodeNames(con); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// encodeNames stores an itemset as a JSON array of item names, so names
// may contain any character without corrupting the round-trip.
func encodeNames(ds *dataset.Dataset, ids apriori.Itemset) (string, error) {
	data, err := json.Marshal(ds.Names(ids))
	if err != nil {
		return "", fmt.Errorf("store: encode itemset: %w", err)
	}

	return string(data), nil
}

// decodeNames restores a JSON-encoded item-name list.
func decodeNames(s string) ([]string, error) {
	var names []string
	if err := json.Unmarshal([]byte(s), &names); err != nil {
		return nil, fmt.Errorf("store: decode itemset: %w", err)
	}

	return names, nil
}
