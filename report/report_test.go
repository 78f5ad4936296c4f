package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basket/apriori"
	"github.com/katalvlaran/basket/dataset"
	"github.com/katalvlaran/basket/report"
	"github.com/katalvlaran/basket/rules"
)

// fixture mines a two-item dataset end to end for rendering checks.
func fixture(t *testing.T) (*dataset.Dataset, []apriori.Frequent, []rules.Rule) {
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

	return ds, freq, rs
}

// TestStats_Table renders one row per metric.
func TestStats_Table(t *testing.T) {
	ds, _, _ := fixture(t)

	out := report.Stats(ds.Stats())
	assert.Contains(t, out, "| transactions | 3 |")
	assert.Contains(t, out, "| unique items | 2 |")
	assert.Contains(t, out, "| basket size max | 2 |")
}

// TestTopItems_Truncation respects n and formats supports to 4 places.
func TestTopItems_Truncation(t *testing.T) {
	ds, _, _ := fixture(t)

	out := report.TopItems(ds.TopItems(0), 1)
	assert.Contains(t, out, "| 1 | diapers | 3 | 1.0000 |")
	assert.NotContains(t, out, "beer", "n=1 keeps only the top row")
}

// TestItemsets_Rows labels itemsets with joined names.
func TestItemsets_Rows(t *testing.T) {
	ds, freq, _ := fixture(t)

	out := report.Itemsets(ds, freq, 0)
	assert.Contains(t, out, "| beer, diapers | 2 | 2 | 0.6667 |")
	assert.Equal(t, 2+len(freq), strings.Count(out, "\n"), "header + separator + rows")
}

// TestRules_Rows renders every measure column.
func TestRules_Rows(t *testing.T) {
	ds, _, rs := fixture(t)

	out := report.Rules(ds, rs, 0)
	assert.Contains(t, out, "| beer | diapers |")
	assert.Contains(t, out, "| 0.6667 | 1.0000 |", "support and confidence of the top rule")
}
