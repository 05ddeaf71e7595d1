package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvloznov/commerce-pipeline/internal/logger"
	"github.com/dvloznov/commerce-pipeline/internal/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the input files without producing reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate() error {
	log := logger.New(verbose)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	state := pipeline.NewState(cfg.Inputs.Transactions, cfg.Inputs.Orders, cfg.Inputs.Chargebacks)
	if err := pipeline.NewValidatePipeline().Execute(ctx, state); err != nil {
		return err
	}

	fmt.Printf("OK: %d transactions, %d orders, %d chargebacks\n",
		len(state.Transactions), len(state.Orders), len(state.Chargebacks))
	return nil
}
