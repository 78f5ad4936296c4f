package rules_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/basket/apriori"
	"github.com/katalvlaran/basket/dataset"
	"github.com/katalvlaran/basket/rules"
)

// ExampleGenerate runs the full mine→generate pipeline on the textbook
// market and keeps only high-confidence rules.
//
// Scenario:
//
//	Every basket with beer also contains diapers, so beer→diapers is the
//	single rule with confidence 1.0; nothing else reaches 0.9.
func ExampleGenerate() {
	day := time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)
	ds, _ := dataset.New(
		[]string{"beer", "bread", "cola", "diapers", "eggs", "milk"},
		[]dataset.Transaction{
			{Member: "m1", Date: day, Items: []int{1, 5}},
			{Member: "m2", Date: day, Items: []int{0, 1, 3, 4}},
			{Member: "m3", Date: day, Items: []int{0, 2, 3, 5}},
			{Member: "m4", Date: day, Items: []int{0, 1, 3, 5}},
			{Member: "m5", Date: day, Items: []int{1, 2, 3, 5}},
		})

	mopts := apriori.DefaultOptions()
	mopts.MinSupport = 0.6
	freq, _ := apriori.Mine(ds, mopts)

	ropts := rules.DefaultOptions()
	ropts.MinConfidence = 0.9

	rs, err := rules.Generate(freq, ropts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, r := range rs {
		fmt.Printf("%s → %s  conf=%.2f lift=%.2f\n",
			strings.Join(ds.Names(r.Antecedent), "+"),
			strings.Join(ds.Names(r.Consequent), "+"),
			r.Confidence, r.Lift)
	}
	// Output:
	// beer → diapers  conf=1.00 lift=1.25
}
