/*
Package workforce defines the synthetic company records and the rules that
tie them together.

PURPOSE:
  Employees, their monthly payments and their internal expenses, plus the
  Dataset that groups one generation run. The stored literals (Ativo,
  Pago, Aprovado, ...) are the values external SQL consumers filter on, so
  they are part of the contract.

RECORDS:
  Employee: identity, classification (catalog keys), salary, hire date,
            status, optional manager (same department, senior, earlier id)
  Payment:  one per employee per reference month
  Expense:  free-standing expense with an approval status

LIFECYCLE:
  Records are created once by a generation pass and never mutated.
  A new run drops and recreates the whole dataset.

SEE ALSO:
  - dataset.go: Dataset and Summary
  - validate.go: Cross-table invariants
  - dataset.go: Store persistence interface
*/
package workforce

import (
	"time"

	"github.com/PedroMissola/analisador-relatorios/catalog"
	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/shopspring/decimal"
)

// =============================================================================
// STATUSES - Stored literals
// =============================================================================

type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "Ativo"
	StatusInactive EmployeeStatus = "Inativo"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Pago"
	PaymentPending PaymentStatus = "Pendente"
)

type ApprovalStatus string

const (
	ApprovalApproved ApprovalStatus = "Aprovado"
	ApprovalPending  ApprovalStatus = "Pendente"
	ApprovalRejected ApprovalStatus = "Rejeitado"
)

func (s EmployeeStatus) Valid() bool { return s == StatusActive || s == StatusInactive }
func (s PaymentStatus) Valid() bool { return s == PaymentPaid || s == PaymentPending }
func (s ApprovalStatus) Valid() bool {
	return s == ApprovalApproved || s == ApprovalPending || s == ApprovalRejected
}

// =============================================================================
// RECORDS
// =============================================================================

// EmployeeID is the sequential employee identifier, starting at 1.
type EmployeeID int64

// Employee is one row of the workforce.
type Employee struct {
	ID            EmployeeID
	Name          string
	Email         string
	Division      catalog.Division
	Department    catalog.Department
	Title         string
	MonthlySalary decimal.Decimal
	HireDate      time.Time
	Status        EmployeeStatus
	ManagerID     *EmployeeID
}

// IsActive reports whether the employee still works here.
func (e Employee) IsActive() bool { return e.Status == StatusActive }

// SeniorAt reports whether the employee was hired at least
// SeniorTenureYears before today.
func (e Employee) SeniorAt(today time.Time) bool {
	return !generic.Day(e.HireDate).After(SeniorCutoff(today))
}

// SeniorTenureYears is how long an employee must have been hired to manage others.
const SeniorTenureYears = 3

// SeniorCutoff is the latest hire date that still counts as senior on today.
func SeniorCutoff(today time.Time) time.Time {
	return generic.AddYears(generic.Day(today), -SeniorTenureYears)
}

// Payment is a monthly payroll entry.
type Payment struct {
	EmployeeID     EmployeeID
	ReferenceMonth generic.Month
	Amount         decimal.Decimal
	PaidOn         time.Time
	Status         PaymentStatus
}

// Expense is an internal expense claim.
type Expense struct {
	EmployeeID  EmployeeID
	Description catalog.ExpenseCategory
	Amount      decimal.Decimal
	SpentOn     time.Time
	Approval    ApprovalStatus
}
