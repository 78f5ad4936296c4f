// Package config loads the YAML run configuration consumed by cmd/basket.
// Every field has a working default, so the CLI runs without any file;
// flags override whatever the file set.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all basket CLI configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Mining MiningConfig `yaml:"mining"`
	Rules  RulesConfig  `yaml:"rules"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig describes the purchase-log CSV.
type InputConfig struct {
	Path         string `yaml:"path"`
	MemberColumn string `yaml:"member_column"`
	DateColumn   string `yaml:"date_column"`
	ItemColumn   string `yaml:"item_column"`
	DateLayout   string `yaml:"date_layout"`
}

// MiningConfig configures the Apriori pass.
type MiningConfig struct {
	MinSupport float64 `yaml:"min_support"`
	MaxLen     int     `yaml:"max_len"`
	Workers    int     `yaml:"workers"`
}

// RulesConfig configures rule generation and presentation order.
type RulesConfig struct {
	MinConfidence float64 `yaml:"min_confidence"`
	MinLift       float64 `yaml:"min_lift"`
	Metric        string  `yaml:"metric"` // confidence|support|lift|cosine|jaccard|rpf
	TopN          int     `yaml:"top_n"`
}

// OutputConfig configures where results go.
type OutputConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// Default returns the documented defaults: Groceries-style columns, 1%
// support, no confidence floor, rules ordered by confidence, top 20 rows.
func Default() Config {
	return Config{
		Input: InputConfig{
			MemberColumn: "Member_number",
			DateColumn:   "Date",
			ItemColumn:   "itemDescription",
			DateLayout:   "02-01-2006",
		},
		Mining: MiningConfig{
			MinSupport: 0.01,
		},
		Rules: RulesConfig{
			Metric: "confidence",
			TopN:   20,
		},
		Output: OutputConfig{
			DatabasePath: "basket_runs.db",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
	}

	return cfg, nil
}
