package workforce

import (
	"time"

	"github.com/PedroMissola/analisador-relatorios/catalog"
	"github.com/PedroMissola/analisador-relatorios/generic"
)

// =============================================================================
// GENERATION RULES - Shared by the synthesizer and the validator
// =============================================================================

const (
	// Salary = division base rate x factor in [MinSeniorityFactor, MaxSeniorityFactor].
	MinSeniorityFactor = 1.0
	MaxSeniorityFactor = 3.5

	// Hire dates fall in [today - HireWindowYears, today - HireMinMonths].
	HireWindowYears = 15
	HireMinMonths   = 1

	// ActiveProbability is the chance a generated employee is Active.
	ActiveProbability = 0.9

	// Payday is the first of the reference month plus PaydayMinOffset..PaydayMaxOffset days.
	PaydayMinOffset = 4
	PaydayMaxOffset = 6

	// PendingWindow: a payment whose reference month ended less than this long
	// ago may still be Pending.
	PendingWindow = 35 * 24 * time.Hour

	// Expense count per Active employee, inclusive.
	MinExpenses = 5
	MaxExpenses = 60
)

// PaymentMultiplier is the inclusive range of the monthly payment factor.
type PaymentMultiplier struct {
	Min, Max float64
}

var (
	// Sales divisions pay commission-like amounts.
	SalesMultiplier = PaymentMultiplier{Min: 0.9, Max: 2.5}
	// Every other division pays salary with a small bonus or deduction.
	StandardMultiplier = PaymentMultiplier{Min: 0.85, Max: 1.2}
)

// MultiplierFor returns the payment factor range for a division.
func MultiplierFor(d catalog.Division) PaymentMultiplier {
	if d.IsSales() {
		return SalesMultiplier
	}
	return StandardMultiplier
}

// ApprovalWeights is the 80/15/5 expense approval distribution.
var ApprovalWeights = []generic.Weighted[ApprovalStatus]{
	{Value: ApprovalApproved, Weight: 80},
	{Value: ApprovalPending, Weight: 15},
	{Value: ApprovalRejected, Weight: 5},
}

// HireWindow returns the inclusive range hire dates are drawn from.
func HireWindow(today time.Time) (earliest, latest time.Time) {
	today = generic.Day(today)
	return generic.AddYears(today, -HireWindowYears), generic.AddMonths(today, -HireMinMonths)
}

// PayrollMonths returns the reference months an Active employee is paid for:
// every month from the hire month up to, but excluding, the current month.
func PayrollMonths(hireDate, today time.Time) []generic.Month {
	return generic.MonthsBetween(generic.MonthOf(hireDate), generic.MonthOf(today))
}

// InPendingWindow reports whether a payment for month may still be Pending.
func InPendingWindow(month generic.Month, today time.Time) bool {
	return generic.Day(today).Sub(month.End()) < PendingWindow
}
