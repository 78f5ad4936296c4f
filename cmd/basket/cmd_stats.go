package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/basket/config"
	"github.com/katalvlaran/basket/report"
)

var (
	statsInput string
	statsTop   int
)

// statsCmd prints descriptive statistics for a purchase log.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Describe a purchase log: basket sizes and item frequencies",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "purchase-log CSV (overrides config)")
	statsCmd.Flags().IntVar(&statsTop, "top", 10, "rows in the item-frequency ranking")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	ds, _, err := loadDataset(cfg, statsInput)
	if err != nil {
		return err
	}

	fmt.Println(report.Stats(ds.Stats()))
	fmt.Println(report.TopItems(ds.TopItems(statsTop), statsTop))

	return nil
}
