package dataset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/dataset"
)

// fourBaskets builds a small fixture with known size distribution:
// sizes 1, 2, 2, 3 over a four-item vocabulary.
func fourBaskets(t *testing.T) *dataset.Dataset {
	t.Helper()

	day := time.Date(2015, time.May, 5, 0, 0, 0, 0, time.UTC)
	ds, err := dataset.New(
		[]string{"beer", "bread", "diapers", "milk"},
		[]dataset.Transaction{
			{Member: "m1", Date: day, Items: []int{1}},
			{Member: "m2", Date: day, Items: []int{1, 3}},
			{Member: "m3", Date: day, Items: []int{0, 2}},
			{Member: "m4", Date: day, Items: []int{1, 2, 3}},
		})
	require.NoError(t, err)

	return ds
}

// TestStats_SizeDistribution checks every Stats field on a known fixture.
func TestStats_SizeDistribution(t *testing.T) {
	st := fourBaskets(t).Stats()

	assert.Equal(t, 8, st.Rows)
	assert.Equal(t, 4, st.Transactions)
	assert.Equal(t, 4, st.UniqueItems)
	assert.Equal(t, 8, st.Occurrences)
	assert.Equal(t, 1, st.MinSize)
	assert.Equal(t, 3, st.MaxSize)
	assert.InDelta(t, 2.0, st.MeanSize, 1e-12)
	assert.InDelta(t, 2.0, st.MedianSize, 1e-12, "even count: mean of middle two")
}

// TestTopItems_RankingAndTies verifies count ordering with name tie-breaks.
func TestTopItems_RankingAndTies(t *testing.T) {
	ds := fourBaskets(t)

	top := ds.TopItems(0)
	require.Len(t, top, 4, "n<=0 returns every item")

	// bread appears in 3 baskets; diapers and milk tie at 2 (name order);
	// beer trails with 1.
	assert.Equal(t, "bread", top[0].Item)
	assert.Equal(t, 3, top[0].Count)
	assert.InDelta(t, 0.75, top[0].Support, 1e-12)
	assert.Equal(t, "diapers", top[1].Item)
	assert.Equal(t, "milk", top[2].Item)
	assert.Equal(t, "beer", top[3].Item)

	assert.Len(t, ds.TopItems(2), 2, "n truncates the ranking")
}

// TestStats_Empty guards the zero-transaction path (constructor rejects it,
// but Stats on a zero value must not divide by zero).
func TestStats_Empty(t *testing.T) {
	var ds dataset.Dataset
	st := ds.Stats()

	assert.Equal(t, 0, st.Transactions)
	assert.Equal(t, 0.0, st.MeanSize)
}
