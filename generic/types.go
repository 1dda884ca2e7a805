/*
Package generic provides the domain-agnostic building blocks used by the
dataset synthesizer.

PURPOSE:
  Nothing in here knows about employees or payroll. It holds the pieces the
  workforce packages are assembled from: money rounding, calendar months,
  seeded randomness, append-only candidate pools, and shared errors.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: decimal.Decimal rounded to cents, never float64 at rest
  - Scale: base amount times a random factor, rounded to cents

DESIGN PRINCIPLES:
  1. Precision: amounts are decimal.Decimal so 2-decimal rounding is exact
  2. Reproducibility: randomness is injected (random.go), never global
  3. Type Safety: months are a struct, not "YYYY-MM" strings, until persisted

SEE ALSO:
  - time.go: Day and Month helpers
  - random.go: Random, Pick, Choose
  - pool.go: CandidatePool
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Two-decimal amounts
// =============================================================================

// MoneyPlaces is the number of decimal places every stored amount carries.
const MoneyPlaces = 2

// Money rounds a float to cents.
func Money(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(MoneyPlaces)
}

// Scale multiplies base by factor and rounds to cents.
func Scale(base decimal.Decimal, factor float64) decimal.Decimal {
	return base.Mul(decimal.NewFromFloat(factor)).Round(MoneyPlaces)
}

// Between reports whether min <= v <= max.
func Between(v, min, max decimal.Decimal) bool {
	return v.GreaterThanOrEqual(min) && v.LessThanOrEqual(max)
}
