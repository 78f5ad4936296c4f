package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/basket/config"
	"github.com/katalvlaran/basket/dataset"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "basket",
	Short: "basket - market-basket association-rule mining",
	Long: `basket mines grocery-style purchase logs for frequent itemsets and
association rules.

Pipeline: CSV purchase log → (member, date) transactions → Apriori
frequent itemsets → scored rules (support, confidence, lift, cosine,
Jaccard, rule power factor) → markdown tables, optionally persisted to
a local SQLite run store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(runsCmd)
}

// loadDataset resolves input settings from config + flags and loads the CSV.
func loadDataset(cfg config.Config, input string) (*dataset.Dataset, string, error) {
	path := cfg.Input.Path
	if input != "" {
		path = input
	}
	if path == "" {
		return nil, "", fmt.Errorf("no input CSV: pass --input or set input.path in the config")
	}

	logger.Debug("Loading purchase log", zap.String("path", path))
	ds, err := dataset.ReadFile(path,
		dataset.WithMemberColumn(cfg.Input.MemberColumn),
		dataset.WithDateColumn(cfg.Input.DateColumn),
		dataset.WithItemColumn(cfg.Input.ItemColumn),
		dataset.WithDateLayout(cfg.Input.DateLayout),
	)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("Purchase log loaded",
		zap.Int("rows", ds.Rows()),
		zap.Int("transactions", ds.Len()),
		zap.Int("items", len(ds.Vocab)))

	return ds, path, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
