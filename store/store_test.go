package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/apriori"
	"github.com/katalvlaran/basket/dataset"
	"github.com/katalvlaran/basket/rules"
	"github.com/katalvlaran/basket/store"
)

// miniRun builds a dataset, its frequent itemsets and rules for round-trips.
func miniRun(t *testing.T) (*dataset.Dataset, []apriori.Frequent, []rules.Rule) {
	t.Helper()

	day := time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)
	ds, err := dataset.New(
		[]string{"beer", "diapers"},
		[]dataset.Transaction{
			{Member: "m1", Date: day, Items: []int{0, 1}},
			{Member: "m2", Date: day, Items: []int{0, 1}},
			{Member: "m3", Date: day, Items: []int{1}},
		})
	require.NoError(t, err)

	opts := apriori.DefaultOptions()
	opts.MinSupport = 0.5
	freq, err := apriori.Mine(ds, opts)
	require.NoError(t, err)

	rs, err := rules.Generate(freq, rules.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, rs)

	return ds, freq, rs
}

// TestStore_RoundTrip persists a run and reads everything back.
func TestStore_RoundTrip(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	ds, freq, rs := miniRun(t)

	run, err := st.SaveRun(ds, "mini.csv", 0.5, 0, freq, rs)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 3, run.Transactions)
	assert.Equal(t, len(freq), run.Itemsets)
	assert.Equal(t, len(rs), run.Rules)

	got, err := st.GetRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, "mini.csv", got.Source)
	assert.InDelta(t, 0.5, got.MinSupport, 1e-12)

	sets, err := st.Itemsets(run.ID)
	require.NoError(t, err)
	require.Len(t, sets, len(freq))
	assert.Equal(t, []string{"beer"}, sets[0].Items)
	assert.Equal(t, []string{"beer", "diapers"}, sets[2].Items, "pair round-trips as a name list")

	saved, err := st.Rules(run.ID)
	require.NoError(t, err)
	require.Len(t, saved, len(rs))
	assert.Equal(t, []string{"beer"}, saved[0].Antecedent)
	assert.Equal(t, []string{"diapers"}, saved[0].Consequent)
	assert.InDelta(t, rs[0].Confidence, saved[0].Confidence, 1e-12)
	assert.InDelta(t, rs[0].Lift, saved[0].Lift, 1e-12)
}

// TestStore_RoundTrip_SeparatorNames keeps names with delimiter-like
// characters intact through a save and reload.
func TestStore_RoundTrip_SeparatorNames(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	day := time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)
	ds, err := dataset.New(
		[]string{"ale|stout", "chips, salted"},
		[]dataset.Transaction{
			{Member: "m1", Date: day, Items: []int{0, 1}},
			{Member: "m2", Date: day, Items: []int{0, 1}},
		})
	require.NoError(t, err)

	opts := apriori.DefaultOptions()
	opts.MinSupport = 0.5
	freq, err := apriori.Mine(ds, opts)
	require.NoError(t, err)
	rs, err := rules.Generate(freq, rules.DefaultOptions())
	require.NoError(t, err)

	run, err := st.SaveRun(ds, "odd.csv", 0.5, 0, freq, rs)
	require.NoError(t, err)

	sets, err := st.Itemsets(run.ID)
	require.NoError(t, err)
	require.Len(t, sets, len(freq))
	assert.Equal(t, []string{"ale|stout"}, sets[0].Items)
	assert.Equal(t, []string{"ale|stout", "chips, salted"}, sets[2].Items)

	saved, err := st.Rules(run.ID)
	require.NoError(t, err)
	require.NotEmpty(t, saved)
	assert.Equal(t, []string{"ale|stout"}, saved[0].Antecedent)
	assert.Equal(t, []string{"chips, salted"}, saved[0].Consequent)
}

// TestStore_ListRuns orders runs newest first.
func TestStore_ListRuns(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	ds, freq, rs := miniRun(t)

	first, err := st.SaveRun(ds, "a.csv", 0.5, 0, freq, rs)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond) // created_at must differ
	second, err := st.SaveRun(ds, "b.csv", 0.5, 0.1, freq, rs)
	require.NoError(t, err)

	runs, err := st.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
}

// TestStore_RunNotFound returns the sentinel for unknown ids.
func TestStore_RunNotFound(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	_, err = st.GetRun("no-such-run")
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}
