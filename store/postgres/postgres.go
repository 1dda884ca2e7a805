/*
Package postgres provides the PostgreSQL-backed workforce.Store.

PURPOSE:
  Same tables, columns and constraints as store/sqlite, in PostgreSQL
  types: money is NUMERIC(12,2) (shopspring/decimal via
  pgx-shopspring-decimal), dates are DATE, reference months CHAR(7).

BULK WRITE:
  WriteDataset streams each table with COPY (pgx CopyFrom) inside one
  transaction. Employees are copied in id order; foreign keys are checked
  at the end of each COPY statement.

USAGE:
  store, err := postgres.New(ctx, os.Getenv("DATABASE_URL"))
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - store/sqlite: Default backend, same schema
  - workforce/dataset.go: Store interface
*/
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store implements workforce.Store on a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

var _ workforce.Store = (*Store)(nil)

// New connects to databaseURL and registers the decimal codec on every
// pooled connection.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	// NUMERIC <-> decimal.Decimal
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes every pooled connection.
func (s *Store) Close() {
	s.pool.Close()
}

// =============================================================================
// SCHEMA
// =============================================================================

const dropSchema = `
	DROP TABLE IF EXISTS gastos_internos;
	DROP TABLE IF EXISTS pagamentos;
	DROP TABLE IF EXISTS funcionarios;
`

const createSchema = `
	CREATE TABLE funcionarios (
		id                  BIGINT PRIMARY KEY,
		nome                TEXT NOT NULL,
		email               TEXT NOT NULL UNIQUE,
		divisao             TEXT NOT NULL,
		departamento        TEXT NOT NULL,
		cargo               TEXT NOT NULL,
		salario_base_mensal NUMERIC(12,2) NOT NULL CHECK (salario_base_mensal > 0),
		data_contratacao    DATE NOT NULL,
		status              TEXT NOT NULL CHECK (status IN ('Ativo', 'Inativo')),
		id_gerente          BIGINT REFERENCES funcionarios(id)
	);

	CREATE INDEX idx_funcionarios_departamento ON funcionarios(departamento);

	CREATE TABLE pagamentos (
		id             BIGSERIAL PRIMARY KEY,
		id_funcionario BIGINT NOT NULL REFERENCES funcionarios(id),
		mes_referencia CHAR(7) NOT NULL,
		valor_pago     NUMERIC(12,2) NOT NULL CHECK (valor_pago > 0),
		data_pagamento DATE NOT NULL,
		status         TEXT NOT NULL CHECK (status IN ('Pago', 'Pendente')),
		UNIQUE (id_funcionario, mes_referencia)
	);

	CREATE INDEX idx_pagamentos_status ON pagamentos(status);

	CREATE TABLE gastos_internos (
		id               BIGSERIAL PRIMARY KEY,
		id_funcionario   BIGINT NOT NULL REFERENCES funcionarios(id),
		descricao        TEXT NOT NULL,
		valor            NUMERIC(12,2) NOT NULL CHECK (valor > 0),
		data_gasto       DATE NOT NULL,
		status_aprovacao TEXT NOT NULL CHECK (status_aprovacao IN ('Aprovado', 'Pendente', 'Rejeitado'))
	);

	CREATE INDEX idx_gastos_funcionario ON gastos_internos(id_funcionario);
`

// InitializeSchema destroys any prior dataset and recreates the empty tables.
func (s *Store) InitializeSchema(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, dropSchema); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if _, err := tx.Exec(ctx, createSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return tx.Commit(ctx)
}

// =============================================================================
// WRITE
// =============================================================================

// WriteDataset copies every record of ds in one transaction.
func (s *Store) WriteDataset(ctx context.Context, ds *workforce.Dataset) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"funcionarios"},
		[]string{"id", "nome", "email", "divisao", "departamento", "cargo",
			"salario_base_mensal", "data_contratacao", "status", "id_gerente"},
		pgx.CopyFromSlice(len(ds.Employees), func(i int) ([]any, error) {
			e := ds.Employees[i]
			var manager *int64
			if e.ManagerID != nil {
				m := int64(*e.ManagerID)
				manager = &m
			}
			return []any{int64(e.ID), e.Name, e.Email, e.Division.Name(), e.Department.Name(), e.Title,
				e.MonthlySalary, e.HireDate, string(e.Status), manager}, nil
		}),
	)
	if err != nil {
		return wrapConstraint("employees", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"pagamentos"},
		[]string{"id_funcionario", "mes_referencia", "valor_pago", "data_pagamento", "status"},
		pgx.CopyFromSlice(len(ds.Payments), func(i int) ([]any, error) {
			p := ds.Payments[i]
			return []any{int64(p.EmployeeID), p.ReferenceMonth.String(), p.Amount, p.PaidOn, string(p.Status)}, nil
		}),
	)
	if err != nil {
		return wrapConstraint("payments", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"gastos_internos"},
		[]string{"id_funcionario", "descricao", "valor", "data_gasto", "status_aprovacao"},
		pgx.CopyFromSlice(len(ds.Expenses), func(i int) ([]any, error) {
			x := ds.Expenses[i]
			return []any{int64(x.EmployeeID), string(x.Description), x.Amount, x.SpentOn, string(x.Approval)}, nil
		}),
	)
	if err != nil {
		return wrapConstraint("expenses", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// wrapConstraint tags SQLSTATE class 23 (integrity constraint violation)
// with generic.ErrConstraint.
func wrapConstraint(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23" {
		return fmt.Errorf("failed to copy %s: %w: %v", table, generic.ErrConstraint, err)
	}
	return fmt.Errorf("failed to copy %s: %w", table, err)
}

// =============================================================================
// READ
// =============================================================================

// Counts returns the number of rows per table.
func (s *Store) Counts(ctx context.Context) (workforce.Counts, error) {
	var c workforce.Counts
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM funcionarios),
			(SELECT COUNT(*) FROM pagamentos),
			(SELECT COUNT(*) FROM gastos_internos)
	`).Scan(&c.Employees, &c.Payments, &c.Expenses)
	if err != nil {
		return workforce.Counts{}, fmt.Errorf("failed to count rows: %w", err)
	}
	return c, nil
}

// PendingPayroll returns the number and total amount of Pendente payments.
func (s *Store) PendingPayroll(ctx context.Context) (count int, total decimal.Decimal, err error) {
	err = s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(valor_pago), 0)
		FROM pagamentos
		WHERE status = 'Pendente'
	`).Scan(&count, &total)
	if err != nil {
		return 0, total, fmt.Errorf("failed to sum pending payments: %w", err)
	}
	return count, total, nil
}
