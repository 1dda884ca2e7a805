/*
validate.go - Cross-table invariants of a generated dataset

PURPOSE:
  Checks a Dataset against every rule the synthesizer promises before it is
  handed to storage. The synthesizer calls Validate right before writing;
  tests call it as the property checker.

RULES:
  employee.id           ids are 1..n in order
  employee.email        emails are present and unique
  employee.status       status is Ativo or Inativo
  employee.class        department belongs to division, title to department
  employee.salary       salary / base rate within [1.0, 3.5]
  employee.hire_date    hire date within [today-15y, today-1mo]
  employee.manager      manager exists, has a lower id, same department,
                        hired at least 3 years before today
  reference             payment/expense points to an existing employee
  inactive              Inativo employees own no payments or expenses
  payment.months        reference months are exactly hire month..last month
  payment.amount        amount within salary x division multiplier range
  payment.date          payday is day 5..7 of the reference month
  payment.status        Pendente only inside the 35-day window
  expense.category      description is one of the division's categories
  expense.amount        amount inside the category band
  expense.date          expense date within [hire date, today]
  expense.status        Aprovado, Pendente or Rejeitado

SEE ALSO:
  - rules.go: The numbers behind each rule
  - generic/errors.go: ErrIntegrity
*/
package workforce

import (
	"fmt"
	"time"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/shopspring/decimal"
)

// Rule names one invariant.
type Rule string

const (
	RuleSequentialID    Rule = "employee.id"
	RuleUniqueEmail     Rule = "employee.email"
	RuleEmployeeStatus  Rule = "employee.status"
	RuleClassification  Rule = "employee.class"
	RuleSalaryRange     Rule = "employee.salary"
	RuleHireWindow      Rule = "employee.hire_date"
	RuleManager         Rule = "employee.manager"
	RuleReference       Rule = "reference"
	RuleInactiveRecords Rule = "inactive"
	RulePaymentMonths   Rule = "payment.months"
	RulePaymentAmount   Rule = "payment.amount"
	RulePaymentDate     Rule = "payment.date"
	RulePaymentStatus   Rule = "payment.status"
	RuleExpenseCategory Rule = "expense.category"
	RuleExpenseAmount   Rule = "expense.amount"
	RuleExpenseDate     Rule = "expense.date"
	RuleExpenseStatus   Rule = "expense.status"
)

// IntegrityError reports the first violated invariant.
type IntegrityError struct {
	Rule       Rule
	EmployeeID EmployeeID
	Detail     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%v: %s (employee %d): %s", generic.ErrIntegrity, e.Rule, e.EmployeeID, e.Detail)
}

func (e *IntegrityError) Unwrap() error {
	return generic.ErrIntegrity
}

func violation(rule Rule, id EmployeeID, format string, args ...any) error {
	return &IntegrityError{Rule: rule, EmployeeID: id, Detail: fmt.Sprintf(format, args...)}
}

// Validate checks every invariant. Returns nil or an *IntegrityError.
func (ds *Dataset) Validate() error {
	today := generic.Day(ds.GeneratedAt)

	byID := make(map[EmployeeID]*Employee, len(ds.Employees))
	if err := ds.validateEmployees(today, byID); err != nil {
		return err
	}
	if err := ds.validatePayments(today, byID); err != nil {
		return err
	}
	return ds.validateExpenses(today, byID)
}

func (ds *Dataset) validateEmployees(today time.Time, byID map[EmployeeID]*Employee) error {
	earliest, latest := HireWindow(today)
	emails := make(map[string]EmployeeID, len(ds.Employees))

	for i := range ds.Employees {
		e := &ds.Employees[i]

		if e.ID != EmployeeID(i+1) {
			return violation(RuleSequentialID, e.ID, "expected id %d at position %d", i+1, i)
		}
		if e.Email == "" {
			return violation(RuleUniqueEmail, e.ID, "empty email")
		}
		if other, dup := emails[e.Email]; dup {
			return violation(RuleUniqueEmail, e.ID, "email %q already used by employee %d", e.Email, other)
		}
		emails[e.Email] = e.ID

		if !e.Status.Valid() {
			return violation(RuleEmployeeStatus, e.ID, "status %q", e.Status)
		}
		if !e.Division.Owns(e.Department) {
			return violation(RuleClassification, e.ID, "department %s outside division %s", e.Department, e.Division)
		}
		if !e.Department.HasTitle(e.Title) {
			return violation(RuleClassification, e.ID, "title %q outside department %s", e.Title, e.Department)
		}

		base := e.Division.BaseSalary()
		if !generic.Between(e.MonthlySalary,
			base.Mul(decimal.NewFromFloat(MinSeniorityFactor)),
			base.Mul(decimal.NewFromFloat(MaxSeniorityFactor))) {
			return violation(RuleSalaryRange, e.ID, "salary %s outside base %s x [%.1f, %.1f]",
				e.MonthlySalary, base, MinSeniorityFactor, MaxSeniorityFactor)
		}

		hire := generic.Day(e.HireDate)
		if hire.Before(earliest) || hire.After(latest) {
			return violation(RuleHireWindow, e.ID, "hire date %s outside [%s, %s]",
				hire.Format(generic.DateLayout), earliest.Format(generic.DateLayout), latest.Format(generic.DateLayout))
		}

		if e.ManagerID != nil {
			// byID only holds earlier employees at this point.
			manager, ok := byID[*e.ManagerID]
			if !ok {
				return violation(RuleManager, e.ID, "manager %d does not precede the employee", *e.ManagerID)
			}
			if manager.Department != e.Department {
				return violation(RuleManager, e.ID, "manager %d works in %s, not %s", manager.ID, manager.Department, e.Department)
			}
			if !manager.SeniorAt(today) {
				return violation(RuleManager, e.ID, "manager %d hired %s is not senior", manager.ID,
					manager.HireDate.Format(generic.DateLayout))
			}
		}

		byID[e.ID] = e
	}
	return nil
}

func (ds *Dataset) validatePayments(today time.Time, byID map[EmployeeID]*Employee) error {
	months := make(map[EmployeeID][]generic.Month)

	for _, p := range ds.Payments {
		e, ok := byID[p.EmployeeID]
		if !ok {
			return violation(RuleReference, p.EmployeeID, "payment for unknown employee")
		}
		if !e.IsActive() {
			return violation(RuleInactiveRecords, e.ID, "payment %s for inactive employee", p.ReferenceMonth)
		}
		if !p.Status.Valid() {
			return violation(RulePaymentStatus, e.ID, "status %q", p.Status)
		}
		if p.Status == PaymentPending && !InPendingWindow(p.ReferenceMonth, today) {
			return violation(RulePaymentStatus, e.ID, "month %s is too old to be pending", p.ReferenceMonth)
		}

		m := MultiplierFor(e.Division)
		if !generic.Between(p.Amount, generic.Scale(e.MonthlySalary, m.Min), generic.Scale(e.MonthlySalary, m.Max)) {
			return violation(RulePaymentAmount, e.ID, "amount %s outside salary %s x [%.2f, %.2f]",
				p.Amount, e.MonthlySalary, m.Min, m.Max)
		}

		offset := generic.DaysBetween(p.ReferenceMonth.Start(), p.PaidOn)
		if offset < PaydayMinOffset || offset > PaydayMaxOffset {
			return violation(RulePaymentDate, e.ID, "paid on %s for month %s",
				p.PaidOn.Format(generic.DateLayout), p.ReferenceMonth)
		}

		months[e.ID] = append(months[e.ID], p.ReferenceMonth)
	}

	for i := range ds.Employees {
		e := &ds.Employees[i]
		if !e.IsActive() {
			continue
		}
		want := PayrollMonths(e.HireDate, today)
		got := months[e.ID]
		if len(got) != len(want) {
			return violation(RulePaymentMonths, e.ID, "%d payments, want %d", len(got), len(want))
		}
		seen := make(map[generic.Month]bool, len(got))
		for _, m := range got {
			if seen[m] {
				return violation(RulePaymentMonths, e.ID, "duplicate month %s", m)
			}
			seen[m] = true
		}
		for _, m := range want {
			if !seen[m] {
				return violation(RulePaymentMonths, e.ID, "missing month %s", m)
			}
		}
	}
	return nil
}

func (ds *Dataset) validateExpenses(today time.Time, byID map[EmployeeID]*Employee) error {
	for _, x := range ds.Expenses {
		e, ok := byID[x.EmployeeID]
		if !ok {
			return violation(RuleReference, x.EmployeeID, "expense for unknown employee")
		}
		if !e.IsActive() {
			return violation(RuleInactiveRecords, e.ID, "expense %q for inactive employee", x.Description)
		}
		if !x.Approval.Valid() {
			return violation(RuleExpenseStatus, e.ID, "approval %q", x.Approval)
		}

		allowed := false
		for _, c := range e.Division.ExpenseCategories() {
			if c == x.Description {
				allowed = true
				break
			}
		}
		if !allowed {
			return violation(RuleExpenseCategory, e.ID, "%q is not a %s expense", x.Description, e.Division)
		}

		lo, hi := x.Description.AmountRange()
		if !generic.Between(x.Amount, lo, hi) {
			return violation(RuleExpenseAmount, e.ID, "%q amount %s outside [%s, %s]", x.Description, x.Amount, lo, hi)
		}

		spent := generic.Day(x.SpentOn)
		if spent.Before(generic.Day(e.HireDate)) || spent.After(today) {
			return violation(RuleExpenseDate, e.ID, "spent on %s, hired %s",
				spent.Format(generic.DateLayout), e.HireDate.Format(generic.DateLayout))
		}
	}
	return nil
}
