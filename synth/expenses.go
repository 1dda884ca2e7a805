package synth

import (
	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/workforce"
)

// expenses produces 5..60 claims drawn from the employee's division
// categories, dated between the hire date and today.
func (b *builder) expenses(e *workforce.Employee) []workforce.Expense {
	categories := e.Division.ExpenseCategories()
	n := b.rng.IntBetween(workforce.MinExpenses, workforce.MaxExpenses)

	out := make([]workforce.Expense, 0, n)
	for range n {
		category := generic.Pick(b.rng, categories)
		lo, hi := category.AmountRange()

		out = append(out, workforce.Expense{
			EmployeeID:  e.ID,
			Description: category,
			Amount:      generic.Money(b.rng.Uniform(lo.InexactFloat64(), hi.InexactFloat64())),
			SpentOn:     b.rng.DateBetween(e.HireDate, b.today),
			Approval:    generic.Choose(b.rng, workforce.ApprovalWeights),
		})
	}
	return out
}
