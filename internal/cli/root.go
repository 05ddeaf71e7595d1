// Package cli defines the cobra command tree for the commerce-pipeline
// binary.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dvloznov/commerce-pipeline/internal/config"
)

var (
	cfgFile string
	verbose bool

	transactionsPath string
	ordersPath       string
	chargebacksPath  string
)

var rootCmd = &cobra.Command{
	Use:   "commerce-pipeline",
	Short: "Batch pipeline for e-commerce transaction, order, and chargeback data",
	Long: `commerce-pipeline ingests transaction and order JSON files plus a
chargeback CSV, validates and joins them, and prints four aggregate
reports: daily transaction metrics, chargeback rates by payment method,
failed transaction analysis, and payment method performance.

Any validation failure aborts the run before reports are produced.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentFlags().StringVar(&transactionsPath, "transactions", "", "Transactions JSON file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&ordersPath, "orders", "", "Orders JSON file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&chargebacksPath, "chargebacks", "", "Chargebacks CSV file (overrides config)")
}

// loadConfig resolves the effective configuration: config file if given,
// defaults otherwise, then flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if transactionsPath != "" {
		cfg.Inputs.Transactions = transactionsPath
	}
	if ordersPath != "" {
		cfg.Inputs.Orders = ordersPath
	}
	if chargebacksPath != "" {
		cfg.Inputs.Chargebacks = chargebacksPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
