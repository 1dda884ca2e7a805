/*
Package sqlite provides the SQLite-backed workforce.Store.

PURPOSE:
  Default storage for the synthetic dataset. The schema keeps the column
  names and status literals external report consumers query, so they are
  part of the contract:

KEY TABLES:
  funcionarios:    employees, self-referencing id_gerente (nullable)
  pagamentos:      monthly payments, UNIQUE(id_funcionario, mes_referencia)
  gastos_internos: expense claims

  Status columns carry CHECK constraints. Money is REAL rounded to cents,
  dates are TEXT "YYYY-MM-DD", reference months TEXT "YYYY-MM".

DESTRUCTIVE INIT:
  InitializeSchema drops the three tables (children first) and recreates
  them. There is no migration path: every run starts from an empty schema.

TRANSACTIONS:
  WriteDataset inserts employees (in id order, so id_gerente always points
  backwards), then payments, then expenses inside one transaction. Any
  failure rolls everything back.

CONNECTIONS:
  Opened with foreign keys on and WAL journaling, limited to a single
  connection so ":memory:" databases behave like one database.

USAGE:
  store, err := sqlite.New("data/empresa.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - workforce/dataset.go: Store interface
  - store/postgres: Same schema on PostgreSQL
  - store/memory: In-memory implementation for tests and dry runs
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/PedroMissola/analisador-relatorios/catalog"
	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store implements workforce.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ workforce.Store = (*Store)(nil)

// New opens (creating if needed) the database at dbPath. The parent
// directory is created. Use MemoryPath for an in-memory database.
// The schema is not touched; call InitializeSchema.
func New(dbPath string) (*Store, error) {
	if dbPath != MemoryPath {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
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
		id                  INTEGER PRIMARY KEY,
		nome                TEXT NOT NULL,
		email               TEXT NOT NULL UNIQUE,
		divisao             TEXT NOT NULL,
		departamento        TEXT NOT NULL,
		cargo               TEXT NOT NULL,
		salario_base_mensal REAL NOT NULL CHECK (salario_base_mensal > 0),
		data_contratacao    TEXT NOT NULL,
		status              TEXT NOT NULL CHECK (status IN ('Ativo', 'Inativo')),
		id_gerente          INTEGER REFERENCES funcionarios(id)
	);

	CREATE INDEX idx_funcionarios_departamento ON funcionarios(departamento);
	CREATE INDEX idx_funcionarios_gerente ON funcionarios(id_gerente) WHERE id_gerente IS NOT NULL;

	CREATE TABLE pagamentos (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		id_funcionario INTEGER NOT NULL REFERENCES funcionarios(id),
		mes_referencia TEXT NOT NULL,
		valor_pago     REAL NOT NULL CHECK (valor_pago > 0),
		data_pagamento TEXT NOT NULL,
		status         TEXT NOT NULL CHECK (status IN ('Pago', 'Pendente')),
		UNIQUE (id_funcionario, mes_referencia)
	);

	-- pending payments report
	CREATE INDEX idx_pagamentos_status ON pagamentos(status);

	CREATE TABLE gastos_internos (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		id_funcionario   INTEGER NOT NULL REFERENCES funcionarios(id),
		descricao        TEXT NOT NULL,
		valor            REAL NOT NULL CHECK (valor > 0),
		data_gasto       TEXT NOT NULL,
		status_aprovacao TEXT NOT NULL CHECK (status_aprovacao IN ('Aprovado', 'Pendente', 'Rejeitado'))
	);

	CREATE INDEX idx_gastos_funcionario ON gastos_internos(id_funcionario);
`

// InitializeSchema destroys any prior dataset and recreates the empty tables.
func (s *Store) InitializeSchema(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, createSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return tx.Commit()
}

// =============================================================================
// WRITE
// =============================================================================

// WriteDataset inserts every record of ds in one transaction.
func (s *Store) WriteDataset(ctx context.Context, ds *workforce.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertEmployees(ctx, tx, ds.Employees); err != nil {
		return err
	}
	if err := insertPayments(ctx, tx, ds.Payments); err != nil {
		return err
	}
	if err := insertExpenses(ctx, tx, ds.Expenses); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

func insertEmployees(ctx context.Context, tx *sql.Tx, employees []workforce.Employee) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO funcionarios
		(id, nome, email, divisao, departamento, cargo, salario_base_mensal, data_contratacao, status, id_gerente)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare employee insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range employees {
		var manager sql.NullInt64
		if e.ManagerID != nil {
			manager = sql.NullInt64{Int64: int64(*e.ManagerID), Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			int64(e.ID),
			e.Name,
			e.Email,
			e.Division.Name(),
			e.Department.Name(),
			e.Title,
			e.MonthlySalary.InexactFloat64(),
			e.HireDate.Format(generic.DateLayout),
			string(e.Status),
			manager,
		)
		if err != nil {
			return wrapConstraint(fmt.Sprintf("employee %d", e.ID), err)
		}
	}
	return nil
}

func insertPayments(ctx context.Context, tx *sql.Tx, payments []workforce.Payment) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pagamentos (id_funcionario, mes_referencia, valor_pago, data_pagamento, status)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare payment insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range payments {
		_, err := stmt.ExecContext(ctx,
			int64(p.EmployeeID),
			p.ReferenceMonth.String(),
			p.Amount.InexactFloat64(),
			p.PaidOn.Format(generic.DateLayout),
			string(p.Status),
		)
		if err != nil {
			return wrapConstraint(fmt.Sprintf("payment %d/%s", p.EmployeeID, p.ReferenceMonth), err)
		}
	}
	return nil
}

func insertExpenses(ctx context.Context, tx *sql.Tx, expenses []workforce.Expense) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO gastos_internos (id_funcionario, descricao, valor, data_gasto, status_aprovacao)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare expense insert: %w", err)
	}
	defer stmt.Close()

	for _, x := range expenses {
		_, err := stmt.ExecContext(ctx,
			int64(x.EmployeeID),
			string(x.Description),
			x.Amount.InexactFloat64(),
			x.SpentOn.Format(generic.DateLayout),
			string(x.Approval),
		)
		if err != nil {
			return wrapConstraint(fmt.Sprintf("expense of employee %d", x.EmployeeID), err)
		}
	}
	return nil
}

// wrapConstraint tags constraint failures with generic.ErrConstraint so
// callers can tell bad data from a broken database.
func wrapConstraint(what string, err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code&0xff == sqlite3.ErrConstraint {
		return fmt.Errorf("failed to insert %s: %w: %v", what, generic.ErrConstraint, err)
	}
	return fmt.Errorf("failed to insert %s: %w", what, err)
}

// =============================================================================
// READ
// =============================================================================

// Counts returns the number of rows per table.
func (s *Store) Counts(ctx context.Context) (workforce.Counts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c workforce.Counts
	err := s.db.QueryRowContext(ctx, `
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
// Amounts are summed as decimals after rounding each row to cents.
func (s *Store) PendingPayroll(ctx context.Context) (count int, total decimal.Decimal, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT valor_pago FROM pagamentos WHERE status = 'Pendente'`)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to query pending payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return 0, decimal.Zero, fmt.Errorf("failed to scan pending payment: %w", err)
		}
		count++
		total = total.Add(money(amount))
	}
	if err := rows.Err(); err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to read pending payments: %w", err)
	}
	return count, total, nil
}

// ListEmployees returns every employee ordered by id.
func (s *Store) ListEmployees(ctx context.Context) ([]workforce.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, nome, email, divisao, departamento, cargo, salario_base_mensal,
		       data_contratacao, status, id_gerente
		FROM funcionarios
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []workforce.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func scanEmployee(rows *sql.Rows) (workforce.Employee, error) {
	var (
		e                    workforce.Employee
		id                   int64
		division, department string
		salary               float64
		hireDate, status     string
		manager              sql.NullInt64
	)
	if err := rows.Scan(&id, &e.Name, &e.Email, &division, &department, &e.Title,
		&salary, &hireDate, &status, &manager); err != nil {
		return e, fmt.Errorf("failed to scan employee: %w", err)
	}

	var err error
	e.ID = workforce.EmployeeID(id)
	if e.Division, err = catalog.LookupDivision(division); err != nil {
		return e, err
	}
	if e.Department, err = catalog.LookupDepartment(e.Division, department); err != nil {
		return e, err
	}
	if e.HireDate, err = time.Parse(generic.DateLayout, hireDate); err != nil {
		return e, fmt.Errorf("failed to parse hire date of employee %d: %w", id, err)
	}
	e.MonthlySalary = money(salary)
	e.Status = workforce.EmployeeStatus(status)
	if manager.Valid {
		m := workforce.EmployeeID(manager.Int64)
		e.ManagerID = &m
	}
	return e, nil
}

// PaymentsByEmployee returns an employee's payments ordered by reference month.
func (s *Store) PaymentsByEmployee(ctx context.Context, id workforce.EmployeeID) ([]workforce.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT mes_referencia, valor_pago, data_pagamento, status
		FROM pagamentos
		WHERE id_funcionario = ?
		ORDER BY mes_referencia
	`, int64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []workforce.Payment
	for rows.Next() {
		var (
			month, paidOn, status string
			amount                float64
		)
		if err := rows.Scan(&month, &amount, &paidOn, &status); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p := workforce.Payment{EmployeeID: id, Amount: money(amount), Status: workforce.PaymentStatus(status)}
		if p.ReferenceMonth, err = generic.ParseMonth(month); err != nil {
			return nil, err
		}
		if p.PaidOn, err = time.Parse(generic.DateLayout, paidOn); err != nil {
			return nil, fmt.Errorf("failed to parse payment date: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ExpensesByEmployee returns an employee's expenses ordered by date.
func (s *Store) ExpensesByEmployee(ctx context.Context, id workforce.EmployeeID) ([]workforce.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT descricao, valor, data_gasto, status_aprovacao
		FROM gastos_internos
		WHERE id_funcionario = ?
		ORDER BY data_gasto, id
	`, int64(id))
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []workforce.Expense
	for rows.Next() {
		var (
			description, spentOn, approval string
			amount                         float64
		)
		if err := rows.Scan(&description, &amount, &spentOn, &approval); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		x := workforce.Expense{
			EmployeeID:  id,
			Description: catalog.ExpenseCategory(description),
			Amount:      money(amount),
			Approval:    workforce.ApprovalStatus(approval),
		}
		if x.SpentOn, err = time.Parse(generic.DateLayout, spentOn); err != nil {
			return nil, fmt.Errorf("failed to parse expense date: %w", err)
		}
		expenses = append(expenses, x)
	}
	return expenses, rows.Err()
}

func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(generic.MoneyPlaces)
}
