package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/basket/apriori"
	"github.com/katalvlaran/basket/config"
	"github.com/katalvlaran/basket/report"
	"github.com/katalvlaran/basket/rules"
	"github.com/katalvlaran/basket/store"
)

var (
	rulesInput      string
	rulesMinSupport float64
	rulesMaxLen     int
	rulesWorkers    int
	rulesMinConf    float64
	rulesMinLift    float64
	rulesMetric     string
	rulesTop        int
	rulesSave       bool
	rulesDB         string
)

// rulesCmd runs the full pipeline: load → mine → generate → render.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Mine association rules and print the scored table",
	RunE:  runRules,
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesInput, "input", "i", "", "purchase-log CSV (overrides config)")
	rulesCmd.Flags().Float64Var(&rulesMinSupport, "min-support", 0, "minimum support in (0,1] (overrides config)")
	rulesCmd.Flags().IntVar(&rulesMaxLen, "max-len", -1, "largest itemset size, 0 = unbounded (overrides config)")
	rulesCmd.Flags().IntVar(&rulesWorkers, "workers", -1, "goroutines for support counting (overrides config)")
	rulesCmd.Flags().Float64Var(&rulesMinConf, "min-confidence", -1, "minimum confidence in [0,1] (overrides config)")
	rulesCmd.Flags().Float64Var(&rulesMinLift, "min-lift", -1, "minimum lift (overrides config)")
	rulesCmd.Flags().StringVar(&rulesMetric, "metric", "", "sort metric: confidence|support|lift|cosine|jaccard|rpf")
	rulesCmd.Flags().IntVar(&rulesTop, "top", 0, "rows to print, 0 = config top_n")
	rulesCmd.Flags().BoolVar(&rulesSave, "save", false, "persist the run to the SQLite store")
	rulesCmd.Flags().StringVar(&rulesDB, "db", "", "run-store path (overrides config)")
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	ds, source, err := loadDataset(cfg, rulesInput)
	if err != nil {
		return err
	}

	mopts := miningOptions(cfg, cmd, rulesMinSupport, rulesMaxLen, rulesWorkers)
	ropts, err := ruleOptions(cfg, cmd)
	if err != nil {
		return err
	}

	logger.Info("Mining frequent itemsets",
		zap.Float64("min_support", mopts.MinSupport),
		zap.Int("max_len", mopts.MaxLen))
	freq, err := apriori.Mine(ds, mopts)
	if err != nil {
		return err
	}

	logger.Info("Generating rules",
		zap.Int("itemsets", len(freq)),
		zap.Float64("min_confidence", ropts.MinConfidence),
		zap.String("metric", ropts.SortBy.String()))
	rs, err := rules.Generate(freq, ropts)
	if err != nil {
		return err
	}
	logger.Info("Rule generation finished", zap.Int("rules", len(rs)))

	top := cfg.Rules.TopN
	if rulesTop > 0 {
		top = rulesTop
	}
	fmt.Println(report.Rules(ds, rs, top))

	if rulesSave {
		dbPath := cfg.Output.DatabasePath
		if rulesDB != "" {
			dbPath = rulesDB
		}
		st, serr := store.Open(dbPath)
		if serr != nil {
			return serr
		}
		defer st.Close()

		run, serr := st.SaveRun(ds, source, mopts.MinSupport, ropts.MinConfidence, freq, rs)
		if serr != nil {
			return serr
		}
		logger.Info("Run persisted", zap.String("run_id", run.ID), zap.String("db", st.Path()))
		fmt.Printf("saved run %s (%d itemsets, %d rules)\n", run.ID, run.Itemsets, run.Rules)
	}

	return nil
}

// ruleOptions merges config values with any flags the user changed.
func ruleOptions(cfg config.Config, cmd *cobra.Command) (rules.Options, error) {
	opts := rules.DefaultOptions()
	opts.MinConfidence = cfg.Rules.MinConfidence
	opts.MinLift = cfg.Rules.MinLift

	metric := cfg.Rules.Metric
	if cmd.Flags().Changed("metric") {
		metric = rulesMetric
	}
	if metric != "" {
		key, err := rules.ParseSortKey(metric)
		if err != nil {
			return rules.Options{}, err
		}
		opts.SortBy = key
	}

	if cmd.Flags().Changed("min-confidence") {
		opts.MinConfidence = rulesMinConf
	}
	if cmd.Flags().Changed("min-lift") {
		opts.MinLift = rulesMinLift
	}

	return opts, nil
}
