package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/basket/config"
	"github.com/katalvlaran/basket/store"
)

var (
	runsDB   string
	runsShow string
)

// runsCmd lists persisted mining runs or shows one run's rules.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List persisted mining runs (or show one with --show)",
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsDB, "db", "", "run-store path (overrides config)")
	runsCmd.Flags().StringVar(&runsShow, "show", "", "run id to print stored rules for")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	dbPath := cfg.Output.DatabasePath
	if runsDB != "" {
		dbPath = runsDB
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if runsShow != "" {
		return showRun(st, runsShow)
	}

	runs, err := st.ListRuns()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")

		return nil
	}

	fmt.Println("| run | source | min_supp | min_conf | tx | itemsets | rules | created |")
	fmt.Println("|---|---|---|---|---|---|---|---|")
	for _, r := range runs {
		fmt.Printf("| %s | %s | %.4f | %.4f | %d | %d | %d | %s |\n",
			r.ID, r.Source, r.MinSupport, r.MinConfidence,
			r.Transactions, r.Itemsets, r.Rules, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}

func showRun(st *store.Store, id string) error {
	run, err := st.GetRun(id)
	if err != nil {
		return err
	}
	rs, err := st.Rules(id)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %s (%d rules)\n\n", run.ID, run.Source, run.Rules)
	fmt.Println("| antecedent | consequent | support | confidence | lift |")
	fmt.Println("|---|---|---|---|---|")
	for _, r := range rs {
		fmt.Printf("| %s | %s | %.4f | %.4f | %.4f |\n",
			strings.Join(r.Antecedent, ", "), strings.Join(r.Consequent, ", "),
			r.Support, r.Confidence, r.Lift)
	}

	return nil
}
