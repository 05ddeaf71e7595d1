package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dvloznov/commerce-pipeline/internal/logger"
	"github.com/dvloznov/commerce-pipeline/internal/pipeline"
	"github.com/dvloznov/commerce-pipeline/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline and print the aggregate reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPipeline()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline() error {
	log := logger.New(verbose)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	state := pipeline.NewState(cfg.Inputs.Transactions, cfg.Inputs.Orders, cfg.Inputs.Chargebacks)
	log.Info().Str("run_id", state.RunID).Msg("Starting pipeline run")

	if err := pipeline.NewRunPipeline().Execute(ctx, state); err != nil {
		return err
	}

	report.Render(os.Stdout, state.Reports)
	log.Info().Str("run_id", state.RunID).Msg("Pipeline run completed")
	return nil
}
