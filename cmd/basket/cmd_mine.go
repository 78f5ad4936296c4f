package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/basket/apriori"
	"github.com/katalvlaran/basket/config"
	"github.com/katalvlaran/basket/report"
)

var (
	mineInput      string
	mineMinSupport float64
	mineMaxLen     int
	mineWorkers    int
	mineTop        int
)

// mineCmd mines frequent itemsets only (no rule generation).
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine frequent itemsets with Apriori",
	RunE:  runMine,
}

func init() {
	mineCmd.Flags().StringVarP(&mineInput, "input", "i", "", "purchase-log CSV (overrides config)")
	mineCmd.Flags().Float64Var(&mineMinSupport, "min-support", 0, "minimum support in (0,1] (overrides config)")
	mineCmd.Flags().IntVar(&mineMaxLen, "max-len", -1, "largest itemset size, 0 = unbounded (overrides config)")
	mineCmd.Flags().IntVar(&mineWorkers, "workers", -1, "goroutines for support counting (overrides config)")
	mineCmd.Flags().IntVar(&mineTop, "top", 20, "rows to print, 0 = all")
}

// miningOptions merges config values with any flags the user changed.
func miningOptions(cfg config.Config, cmd *cobra.Command,
	minSupport float64, maxLen, workers int) apriori.Options {

	opts := apriori.DefaultOptions()
	opts.MinSupport = cfg.Mining.MinSupport
	opts.MaxLen = cfg.Mining.MaxLen
	opts.Workers = cfg.Mining.Workers

	if cmd.Flags().Changed("min-support") {
		opts.MinSupport = minSupport
	}
	if cmd.Flags().Changed("max-len") {
		opts.MaxLen = maxLen
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = workers
	}

	return opts
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	ds, _, err := loadDataset(cfg, mineInput)
	if err != nil {
		return err
	}

	opts := miningOptions(cfg, cmd, mineMinSupport, mineMaxLen, mineWorkers)
	logger.Info("Mining frequent itemsets",
		zap.Float64("min_support", opts.MinSupport),
		zap.Int("max_len", opts.MaxLen),
		zap.Int("workers", opts.Workers))

	freq, err := apriori.Mine(ds, opts)
	if err != nil {
		return err
	}
	logger.Info("Mining finished", zap.Int("itemsets", len(freq)))

	fmt.Println(report.Itemsets(ds, freq, mineTop))

	return nil
}
