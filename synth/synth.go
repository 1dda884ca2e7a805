/*
Package synth generates the synthetic workforce dataset and writes it to a
workforce.Store in one transaction.

PURPOSE:
  Produces a realistic, internally consistent company: employees with a
  same-department reporting hierarchy, a monthly payroll history and
  internal expense claims. Every draw comes from one seeded source, so a
  fixed seed and a fixed clock reproduce the same dataset.

PASSES:
  1. Employees (employees.go): sequential ids, hierarchy assigned on the way
  2. Payments  (payments.go):  one per month from hire month to last month
  3. Expenses  (expenses.go):  5..60 claims per Active employee
  The dataset is then validated and handed to Store.WriteDataset.

FAILURE SEMANTICS:
  One-shot and all-or-nothing. Any error aborts the run and the store
  rolls back. If InitializeStorage already ran, storage is left empty;
  rerun from scratch. No retries.

CONCURRENCY:
  One run at a time per Synthesizer. A second concurrent run returns
  generic.ErrGenerationInProgress instead of waiting.

SEE ALSO:
  - workforce/rules.go: The distributions and bounds
  - workforce/validate.go: Checked before every write
*/
package synth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/logger"
	"github.com/PedroMissola/analisador-relatorios/workforce"
)

// DefaultEmployees is the employee count used when none is configured.
const DefaultEmployees = 5000

// MaxEmployees bounds one run; the whole dataset is held in memory before
// it is written.
const MaxEmployees = 100_000

// Config tunes a Synthesizer. The zero value is usable.
type Config struct {
	// Seed drives every random draw. Zero picks a time-based seed per run.
	Seed int64
	// Now is the generation clock. Defaults to time.Now.
	Now func() time.Time
	// Logger receives progress logs. Defaults to a no-op logger.
	Logger *logger.Logger
}

// Synthesizer builds datasets and persists them.
type Synthesizer struct {
	store workforce.Store
	cfg   Config
	log   *logger.Logger
	mu    sync.Mutex
}

func New(store workforce.Store, cfg Config) *Synthesizer {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Synthesizer{store: store, cfg: cfg, log: log.Named("synth")}
}

// InitializeStorage destroys any prior dataset and recreates the empty schema.
func (s *Synthesizer) InitializeStorage(ctx context.Context) error {
	if !s.mu.TryLock() {
		return generic.ErrGenerationInProgress
	}
	defer s.mu.Unlock()
	return s.initialize(ctx)
}

// Build generates a dataset without touching storage.
func (s *Synthesizer) Build(count int) (*workforce.Dataset, error) {
	if !s.mu.TryLock() {
		return nil, generic.ErrGenerationInProgress
	}
	defer s.mu.Unlock()
	return s.build(count, s.cfg.Seed)
}

// Generate builds count employees with their histories, validates the
// result and commits it through one Store.WriteDataset call.
func (s *Synthesizer) Generate(ctx context.Context, count int) (workforce.Summary, error) {
	if !s.mu.TryLock() {
		return workforce.Summary{}, generic.ErrGenerationInProgress
	}
	defer s.mu.Unlock()
	return s.generate(ctx, count, s.cfg.Seed)
}

// Regenerate recreates the schema and generates a fresh dataset. A non-zero
// seed overrides the configured one for this run only.
func (s *Synthesizer) Regenerate(ctx context.Context, count int, seed int64) (workforce.Summary, error) {
	if !s.mu.TryLock() {
		return workforce.Summary{}, generic.ErrGenerationInProgress
	}
	defer s.mu.Unlock()

	if err := checkCount(count); err != nil {
		return workforce.Summary{}, err
	}
	if seed == 0 {
		seed = s.cfg.Seed
	}
	if err := s.initialize(ctx); err != nil {
		return workforce.Summary{}, err
	}
	return s.generate(ctx, count, seed)
}

// =============================================================================
// INTERNALS - Callers hold s.mu
// =============================================================================

func (s *Synthesizer) initialize(ctx context.Context) error {
	if err := s.store.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	s.log.Info().Msg("storage initialized")
	return nil
}

func (s *Synthesizer) generate(ctx context.Context, count int, seed int64) (workforce.Summary, error) {
	started := time.Now()

	ds, err := s.build(count, seed)
	if err != nil {
		return workforce.Summary{}, err
	}
	if err := ds.Validate(); err != nil {
		return workforce.Summary{}, fmt.Errorf("generated dataset rejected: %w", err)
	}

	summary := ds.Summary()
	s.log.Info().
		Int("payments", summary.Payments).
		Int("expenses", summary.Expenses).
		Msg("writing dataset")

	if err := s.store.WriteDataset(ctx, ds); err != nil {
		return workforce.Summary{}, fmt.Errorf("failed to write dataset: %w", err)
	}

	s.log.Info().
		Int("employees", summary.Employees).
		Int("inactive", summary.InactiveEmployees).
		Int("payments", summary.Payments).
		Int("pending_payments", summary.PendingPayments).
		Int("expenses", summary.Expenses).
		Dur("took", time.Since(started)).
		Msg("dataset generated")
	return summary, nil
}

func (s *Synthesizer) build(count int, seed int64) (*workforce.Dataset, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	now := s.cfg.Now()
	b := &builder{
		rng:   generic.NewRandom(seed),
		today: generic.Day(now),
	}
	ds := &workforce.Dataset{GeneratedAt: now}

	ds.Employees = b.employees(count)
	s.log.Debug().Int64("seed", seed).Int("employees", len(ds.Employees)).Msg("employees generated")

	for i := range ds.Employees {
		e := &ds.Employees[i]
		if !e.IsActive() {
			continue
		}
		ds.Payments = append(ds.Payments, b.payments(e)...)
		ds.Expenses = append(ds.Expenses, b.expenses(e)...)
	}
	return ds, nil
}

func checkCount(count int) error {
	if count < 1 || count > MaxEmployees {
		return fmt.Errorf("%w: got %d, want 1..%d", generic.ErrInvalidCount, count, MaxEmployees)
	}
	return nil
}

// builder carries the per-run random source and clock.
type builder struct {
	rng   *generic.Random
	today time.Time
}
