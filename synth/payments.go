package synth

import (
	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/workforce"
)

// payments produces one payroll entry per month from the hire month up to,
// but excluding, the current month.
//
//	amount  = salary x U(multiplier range of the division), cents
//	paid on = first of the month + 4..6 days
//	status  = coin flip Paid/Pending while the month ended < 35 days ago,
//	          Paid otherwise
func (b *builder) payments(e *workforce.Employee) []workforce.Payment {
	months := workforce.PayrollMonths(e.HireDate, b.today)
	multiplier := workforce.MultiplierFor(e.Division)

	out := make([]workforce.Payment, 0, len(months))
	for _, month := range months {
		p := workforce.Payment{
			EmployeeID:     e.ID,
			ReferenceMonth: month,
			Amount:         generic.Scale(e.MonthlySalary, b.rng.Uniform(multiplier.Min, multiplier.Max)),
			PaidOn:         month.Start().AddDate(0, 0, b.rng.IntBetween(workforce.PaydayMinOffset, workforce.PaydayMaxOffset)),
			Status:         workforce.PaymentPaid,
		}
		if workforce.InPendingWindow(month, b.today) && b.rng.Coin() {
			p.Status = workforce.PaymentPending
		}
		out = append(out, p)
	}
	return out
}
