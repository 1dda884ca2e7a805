package workforce

import (
	"context"
	"time"
)

// Dataset is everything one generation run produces.
type Dataset struct {
	GeneratedAt time.Time
	Employees   []Employee
	Payments    []Payment
	Expenses    []Expense
}

// Summary counts the rows of a dataset.
type Summary struct {
	GeneratedAt       time.Time `json:"generated_at"`
	Employees         int       `json:"employees"`
	ActiveEmployees   int       `json:"active_employees"`
	InactiveEmployees int       `json:"inactive_employees"`
	WithManager       int       `json:"with_manager"`
	Payments          int       `json:"payments"`
	PendingPayments   int       `json:"pending_payments"`
	Expenses          int       `json:"expenses"`
}

// Summary computes row counts.
func (ds *Dataset) Summary() Summary {
	s := Summary{
		GeneratedAt: ds.GeneratedAt,
		Employees:   len(ds.Employees),
		Payments:    len(ds.Payments),
		Expenses:    len(ds.Expenses),
	}
	for _, e := range ds.Employees {
		if e.IsActive() {
			s.ActiveEmployees++
		} else {
			s.InactiveEmployees++
		}
		if e.ManagerID != nil {
			s.WithManager++
		}
	}
	for _, p := range ds.Payments {
		if p.Status == PaymentPending {
			s.PendingPayments++
		}
	}
	return s
}

// Counts holds row counts as read back from storage.
type Counts struct {
	Employees int
	Payments  int
	Expenses  int
}

// =============================================================================
// STORE - Persistence of a whole dataset
// =============================================================================

// Store persists datasets. There is no partial write: WriteDataset commits
// every employee, payment and expense, or nothing.
type Store interface {
	// InitializeSchema destroys any prior dataset and recreates the empty
	// tables with their constraints.
	InitializeSchema(ctx context.Context) error

	// WriteDataset persists all three record sets in one transaction.
	WriteDataset(ctx context.Context, ds *Dataset) error
}
