package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dvloznov/commerce-pipeline/internal/domain"
	"github.com/dvloznov/commerce-pipeline/internal/loader"
	"github.com/dvloznov/commerce-pipeline/internal/logger"
	"github.com/dvloznov/commerce-pipeline/internal/metrics"
	"github.com/dvloznov/commerce-pipeline/internal/table"
)

// Step is a single stage of the batch run.
type Step interface {
	Name() string
	Execute(ctx context.Context, state *State) error
}

// State carries the data between steps. Each step reads the fields of the
// stages before it and fills in its own; nothing is mutated once written.
type State struct {
	RunID string

	TransactionsPath string
	OrdersPath       string
	ChargebacksPath  string

	RawTransactions []map[string]interface{}
	RawOrders       []map[string]interface{}
	RawChargebacks  []map[string]interface{}

	Transactions []*domain.Transaction
	Orders       []*domain.Order
	Chargebacks  []*domain.Chargeback

	TransactionRows []table.TransactionRow
	OrderRows       []table.OrderRow
	ChargebackRows  []table.ChargebackRow

	Enriched []table.EnrichedRow
	Joined   []table.JoinedRow

	Reports *metrics.Reports
}

// NewState creates run state with a fresh run ID.
func NewState(transactionsPath, ordersPath, chargebacksPath string) *State {
	return &State{
		RunID:            uuid.NewString(),
		TransactionsPath: transactionsPath,
		OrdersPath:       ordersPath,
		ChargebacksPath:  chargebacksPath,
	}
}

// LoadStep reads the three input files into untyped records.
type LoadStep struct{}

func (s *LoadStep) Name() string { return "load" }

func (s *LoadStep) Execute(ctx context.Context, state *State) error {
	var err error
	if state.RawTransactions, err = loader.JSONRecords(ctx, state.TransactionsPath); err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	if state.RawOrders, err = loader.JSONRecords(ctx, state.OrdersPath); err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	if state.RawChargebacks, err = loader.CSVRecords(ctx, state.ChargebacksPath); err != nil {
		return fmt.Errorf("load chargebacks: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("run_id", state.RunID).
		Int("transactions", len(state.RawTransactions)).
		Int("orders", len(state.RawOrders)).
		Int("chargebacks", len(state.RawChargebacks)).
		Msg("Inputs loaded")
	return nil
}

// ValidateStep parses the untyped records into validated entities,
// failing fast on the first malformed record.
type ValidateStep struct{}

func (s *ValidateStep) Name() string { return "validate" }

func (s *ValidateStep) Execute(ctx context.Context, state *State) error {
	var err error
	if state.Transactions, err = ParseTransactions(state.RawTransactions); err != nil {
		return err
	}
	if state.Orders, err = ParseOrders(state.RawOrders); err != nil {
		return err
	}
	if state.Chargebacks, err = ParseChargebacks(state.RawChargebacks); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info().
		Str("run_id", state.RunID).
		Msg("All records validated")
	return nil
}

// NormalizeStep flattens the entities into tabular rows.
type NormalizeStep struct{}

func (s *NormalizeStep) Name() string { return "normalize" }

func (s *NormalizeStep) Execute(ctx context.Context, state *State) error {
	state.TransactionRows = NormalizeTransactions(state.Transactions)
	state.OrderRows = NormalizeOrders(state.Orders)
	state.ChargebackRows = NormalizeChargebacks(state.Chargebacks)
	return nil
}

// EnrichStep left-joins chargebacks onto transactions.
type EnrichStep struct{}

func (s *EnrichStep) Name() string { return "enrich" }

func (s *EnrichStep) Execute(ctx context.Context, state *State) error {
	state.Enriched = EnrichWithChargebacks(state.TransactionRows, state.ChargebackRows)
	return nil
}

// MatchStep left-joins orders onto the enriched rows.
type MatchStep struct{}

func (s *MatchStep) Name() string { return "match" }

func (s *MatchStep) Execute(ctx context.Context, state *State) error {
	state.Joined = MatchTransactionsToOrders(state.Enriched, state.OrderRows)

	log := logger.FromContext(ctx)
	log.Info().
		Str("run_id", state.RunID).
		Int("rows", len(state.Joined)).
		Msg("Joined dataset built")
	return nil
}

// AnalyzeStep computes the four aggregate reports.
type AnalyzeStep struct{}

func (s *AnalyzeStep) Name() string { return "analyze" }

func (s *AnalyzeStep) Execute(ctx context.Context, state *State) error {
	state.Reports = metrics.Compute(state.Joined)
	return nil
}

// Pipeline executes a sequence of steps in order. The first failing step
// aborts the run; there is no partial-result mode.
type Pipeline struct {
	steps []Step
}

// New creates a pipeline with the given steps.
func New(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially against the shared state.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)
	for _, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("step %s: %w", step.Name(), err)
		}
		log.Debug().Str("run_id", state.RunID).Str("step", step.Name()).Msg("Step completed")
	}
	return nil
}

// NewRunPipeline creates the standard pipeline: load, validate, normalize,
// enrich, match, analyze.
func NewRunPipeline() *Pipeline {
	return New(
		&LoadStep{},
		&ValidateStep{},
		&NormalizeStep{},
		&EnrichStep{},
		&MatchStep{},
		&AnalyzeStep{},
	)
}

// NewValidatePipeline creates the load-and-validate-only pipeline used by
// the validate command.
func NewValidatePipeline() *Pipeline {
	return New(
		&LoadStep{},
		&ValidateStep{},
	)
}
