/*
Package store opens the workforce.Store selected by configuration.

PURPOSE:
  Shared by cmd/server and cmd/synth so both commands resolve DB_DRIVER
  the same way.

SEE ALSO:
  - store/sqlite, store/postgres: Backends
  - config/config.go: DB_DRIVER, DB_PATH, DATABASE_URL
*/
package store

import (
	"context"
	"fmt"

	"github.com/PedroMissola/analisador-relatorios/config"
	"github.com/PedroMissola/analisador-relatorios/store/postgres"
	"github.com/PedroMissola/analisador-relatorios/store/sqlite"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	"github.com/shopspring/decimal"
)

// Backend is a store that can also report what it holds.
type Backend interface {
	workforce.Store
	Counts(ctx context.Context) (workforce.Counts, error)
	// PendingPayroll returns the number and total of Pendente payments.
	PendingPayroll(ctx context.Context) (int, decimal.Decimal, error)
}

var (
	_ Backend = (*sqlite.Store)(nil)
	_ Backend = (*postgres.Store)(nil)
)

// Open returns the configured backend and a function that releases it.
func Open(ctx context.Context, cfg config.DBConfig) (Backend, func(), error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite %s: %w", cfg.Path, err)
		}
		return s, func() { _ = s.Close() }, nil
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}
