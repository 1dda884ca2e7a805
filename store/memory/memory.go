// Package memory provides an in-memory workforce.Store for tests and dry runs.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/workforce"
)

// ErrNoSchema is returned when writing before InitializeSchema.
var ErrNoSchema = errors.New("schema not initialized")

// =============================================================================
// MEMORY STORE - Same uniqueness and reference rules as the SQL schema
// =============================================================================

type Store struct {
	mu          sync.RWMutex
	initialized bool
	employees   []workforce.Employee
	payments    []workforce.Payment
	expenses    []workforce.Expense
}

var _ workforce.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// InitializeSchema drops any stored dataset.
func (m *Store) InitializeSchema(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.initialized = true
	m.employees, m.payments, m.expenses = nil, nil, nil
	return nil
}

// WriteDataset appends ds atomically. Rows are checked against the rows
// already stored and against each other before anything is written.
func (m *Store) WriteDataset(_ context.Context, ds *workforce.Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return ErrNoSchema
	}

	// Check everything first (atomic check)
	ids := make(map[workforce.EmployeeID]bool, len(m.employees)+len(ds.Employees))
	emails := make(map[string]bool, len(m.employees)+len(ds.Employees))
	for _, e := range m.employees {
		ids[e.ID] = true
		emails[e.Email] = true
	}
	for _, e := range ds.Employees {
		switch {
		case ids[e.ID]:
			return constraint("duplicate employee id %d", e.ID)
		case emails[e.Email]:
			return constraint("duplicate email %q", e.Email)
		case !e.Status.Valid():
			return constraint("employee %d status %q", e.ID, e.Status)
		case e.ManagerID != nil && !ids[*e.ManagerID]:
			return constraint("employee %d references missing manager %d", e.ID, *e.ManagerID)
		}
		ids[e.ID] = true
		emails[e.Email] = true
	}

	type monthKey struct {
		id    workforce.EmployeeID
		month generic.Month
	}
	months := make(map[monthKey]bool, len(m.payments)+len(ds.Payments))
	for _, p := range m.payments {
		months[monthKey{p.EmployeeID, p.ReferenceMonth}] = true
	}
	for _, p := range ds.Payments {
		k := monthKey{p.EmployeeID, p.ReferenceMonth}
		switch {
		case !ids[p.EmployeeID]:
			return constraint("payment references missing employee %d", p.EmployeeID)
		case months[k]:
			return constraint("duplicate payment %d/%s", p.EmployeeID, p.ReferenceMonth)
		case !p.Status.Valid():
			return constraint("payment status %q", p.Status)
		}
		months[k] = true
	}

	for _, x := range ds.Expenses {
		switch {
		case !ids[x.EmployeeID]:
			return constraint("expense references missing employee %d", x.EmployeeID)
		case !x.Approval.Valid():
			return constraint("expense approval %q", x.Approval)
		}
	}

	// Write all (atomic write)
	m.employees = append(m.employees, ds.Employees...)
	m.payments = append(m.payments, ds.Payments...)
	m.expenses = append(m.expenses, ds.Expenses...)
	return nil
}

func constraint(format string, args ...any) error {
	return fmt.Errorf("%w: %s", generic.ErrConstraint, fmt.Sprintf(format, args...))
}

// =============================================================================
// READ
// =============================================================================

func (m *Store) Counts(_ context.Context) (workforce.Counts, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return workforce.Counts{
		Employees: len(m.employees),
		Payments:  len(m.payments),
		Expenses:  len(m.expenses),
	}, nil
}

// ListEmployees returns a copy of every stored employee in insertion order.
func (m *Store) ListEmployees(_ context.Context) ([]workforce.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]workforce.Employee(nil), m.employees...), nil
}

func (m *Store) PaymentsByEmployee(_ context.Context, id workforce.EmployeeID) ([]workforce.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []workforce.Payment
	for _, p := range m.payments {
		if p.EmployeeID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Store) ExpensesByEmployee(_ context.Context, id workforce.EmployeeID) ([]workforce.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []workforce.Expense
	for _, x := range m.expenses {
		if x.EmployeeID == id {
			out = append(out, x)
		}
	}
	return out, nil
}
