package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/basket/apriori"
	"github.com/katalvlaran/basket/dataset"
	"github.com/katalvlaran/basket/rules"
)

// Stats renders one descriptive-statistics table.
func Stats(st dataset.Stats) string {
	var b strings.Builder
	b.WriteString("| metric | value |\n|---|---|\n")
	fmt.Fprintf(&b, "| rows | %d |\n", st.Rows)
	fmt.Fprintf(&b, "| transactions | %d |\n", st.Transactions)
	fmt.Fprintf(&b, "| unique items | %d |\n", st.UniqueItems)
	fmt.Fprintf(&b, "| item occurrences | %d |\n", st.Occurrences)
	fmt.Fprintf(&b, "| basket size min | %d |\n", st.MinSize)
	fmt.Fprintf(&b, "| basket size max | %d |\n", st.MaxSize)
	fmt.Fprintf(&b, "| basket size mean | %.2f |\n", st.MeanSize)
	fmt.Fprintf(&b, "| basket size median | %.1f |\n", st.MedianSize)

	return b.String()
}

// TopItems renders an item-frequency ranking; n ≤ 0 renders every row.
func TopItems(items []dataset.ItemCount, n int) string {
	if n > 0 && n < len(items) {
		items = items[:n]
	}

	var b strings.Builder
	b.WriteString("| # | item | count | support |\n|---|---|---|---|\n")
	for i, it := range items {
		fmt.Fprintf(&b, "| %d | %s | %d | %.4f |\n", i+1, it.Item, it.Count, it.Support)
	}

	return b.String()
}

// Itemsets renders mined frequent itemsets; n ≤ 0 renders every row.
func Itemsets(ds *dataset.Dataset, freq []apriori.Frequent, n int) string {
	if n > 0 && n < len(freq) {
		freq = freq[:n]
	}

	var b strings.Builder
	b.WriteString("| itemset | length | count | support |\n|---|---|---|---|\n")
	for _, f := range freq {
		fmt.Fprintf(&b, "| %s | %d | %d | %.4f |\n",
			itemsetLabel(ds, f.Items), len(f.Items), f.Count, f.Support)
	}

	return b.String()
}

// Rules renders scored rules with every interestingness measure;
// n ≤ 0 renders every row.
func Rules(ds *dataset.Dataset, rs []rules.Rule, n int) string {
	if n > 0 && n < len(rs) {
		rs = rs[:n]
	}

	var b strings.Builder
	b.WriteString("| antecedent | consequent | support | confidence | lift | cosine | jaccard | rpf |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, r := range rs {
		fmt.Fprintf(&b, "| %s | %s | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f |\n",
			itemsetLabel(ds, r.Antecedent), itemsetLabel(ds, r.Consequent),
			r.Support, r.Confidence, r.Lift, r.Cosine, r.Jaccard, r.RPF)
	}

	return b.String()
}

// itemsetLabel joins item names with ", " for table cells.
func itemsetLabel(ds *dataset.Dataset, ids apriori.Itemset) string {
	return strings.Join(ds.Names(ids), ", ")
}
