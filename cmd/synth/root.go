/*
root.go - Dataset generator command

PURPOSE:
  One-shot batch: drops and recreates the schema, generates the requested
  number of employees with their payroll and expense history, validates
  the dataset and writes it in one transaction.

USAGE:
  synth                            # SYNTH_EMPLOYEES employees into DB_PATH
  synth -n 100 -s 42               # 100 employees, reproducible
  synth -d postgres --database-url postgres://...

  Flags override the environment keys of the same concern.

SEE ALSO:
  - synth/synth.go: Generation pipeline
  - store/store.go: Backend selection
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PedroMissola/analisador-relatorios/config"
	"github.com/PedroMissola/analisador-relatorios/logger"
	"github.com/PedroMissola/analisador-relatorios/store"
	"github.com/PedroMissola/analisador-relatorios/synth"
	"github.com/spf13/cobra"
)

type RootOptions struct {
	Employees   int
	Seed        int64
	Driver      string
	Path        string
	DatabaseURL string
}

var ropts RootOptions

var rootCmd = &cobra.Command{
	Use:          "synth [flags]",
	Short:        "Generate the synthetic workforce dataset (employees, payroll, expenses).",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)
		return Run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&ropts.Employees, "employees", "n", synth.DefaultEmployees, "Number of employees to generate")
	rootCmd.Flags().Int64VarP(&ropts.Seed, "seed", "s", 0, "Random seed (0 = time based)")
	rootCmd.Flags().StringVarP(&ropts.Driver, "driver", "d", config.DriverSQLite, "Storage driver: sqlite or postgres")
	rootCmd.Flags().StringVarP(&ropts.Path, "db", "p", "", "SQLite database path")
	rootCmd.Flags().StringVar(&ropts.DatabaseURL, "database-url", "", "PostgreSQL connection string")
}

// Execute runs the root command until completion or SIGINT/SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// applyFlags overrides configuration with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("employees") {
		cfg.Synth.Employees = ropts.Employees
	}
	if flags.Changed("seed") {
		cfg.Synth.Seed = ropts.Seed
	}
	if flags.Changed("driver") {
		cfg.DB.Driver = ropts.Driver
	}
	if flags.Changed("db") {
		cfg.DB.Path = ropts.Path
	}
	if flags.Changed("database-url") {
		cfg.DB.DatabaseURL = ropts.DatabaseURL
	}
}

// Run generates one dataset as described by cfg.
func Run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	backend, closeStore, err := store.Open(ctx, cfg.DB)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to open store")
		return err
	}
	defer closeStore()

	s := synth.New(backend, synth.Config{
		Seed:   cfg.Synth.Seed,
		Logger: log,
	})

	if err := s.InitializeStorage(ctx); err != nil {
		log.Error().Err(err).Msg("failed to initialize storage")
		return err
	}

	summary, err := s.Generate(ctx, cfg.Synth.Employees)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		return err
	}

	counts, err := backend.Counts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read back row counts")
		return err
	}
	if counts.Employees != summary.Employees || counts.Payments != summary.Payments || counts.Expenses != summary.Expenses {
		err := fmt.Errorf("stored rows %+v differ from generated summary %+v", counts, summary)
		log.Error().Err(err).Msg("read back mismatch")
		return err
	}

	pending, pendingTotal, err := backend.PendingPayroll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read pending payroll")
		return err
	}
	if pending != summary.PendingPayments {
		err := fmt.Errorf("stored %d pending payments, generated %d", pending, summary.PendingPayments)
		log.Error().Err(err).Msg("read back mismatch")
		return err
	}

	fmt.Printf("funcionarios:    %d (%d ativos, %d inativos, %d com gerente)\n",
		summary.Employees, summary.ActiveEmployees, summary.InactiveEmployees, summary.WithManager)
	fmt.Printf("pagamentos:      %d (%d pendentes, total %s)\n", summary.Payments, pending, pendingTotal.StringFixed(2))
	fmt.Printf("gastos_internos: %d\n", summary.Expenses)
	return nil
}
