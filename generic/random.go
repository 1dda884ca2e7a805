/*
random.go - Seedable randomness helpers for weighted synthetic data

PURPOSE:
  Every random draw made while synthesizing a dataset goes through a Random
  value that the caller constructs and injects. Random owns its own
  gofakeit Faker, so fake names and numeric draws share one seeded stream
  and nothing reads the package-global source.

HELPERS:
  Uniform:     float in [min, max]
  IntBetween:  integer in [min, max], both inclusive
  Coin:        fair boolean
  DateBetween: calendar day in [from, to], both inclusive
  Pick:        uniform element of a slice
  Choose:      weighted element of a Weighted slice (e.g. 80/15/5)
  Name:        fake full name

SEE ALSO:
  - synth/employees.go, synth/payments.go, synth/expenses.go: Consumers
*/
package generic

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Random wraps a per-run gofakeit Faker. Not safe for concurrent use.
type Random struct {
	f *gofakeit.Faker
}

// NewRandom creates a Random seeded with seed. The same non-zero seed yields
// the same sequence of draws; zero lets gofakeit pick a random seed.
func NewRandom(seed int64) *Random {
	return &Random{f: gofakeit.New(uint64(seed))}
}

// Uniform returns a float64 in [min, max].
func (r *Random) Uniform(min, max float64) float64 {
	return min + r.f.Float64()*(max-min)
}

// IntBetween returns an int in [min, max].
func (r *Random) IntBetween(min, max int) int {
	return r.f.IntRange(min, max)
}

// Chance returns true with probability p.
func (r *Random) Chance(p float64) bool {
	return r.f.Float64() < p
}

// Coin flips a fair coin.
func (r *Random) Coin() bool {
	return r.f.Bool()
}

// Name returns a fake "First Last" name.
func (r *Random) Name() string {
	return r.f.Name()
}

// DateBetween returns a calendar day uniformly chosen in [from, to].
// If to is before from, from is returned.
func (r *Random) DateBetween(from, to time.Time) time.Time {
	from, to = Day(from), Day(to)
	days := DaysBetween(from, to)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, r.IntBetween(0, days))
}

// Pick returns a uniformly chosen element. Panics on an empty slice.
func Pick[T any](r *Random, items []T) T {
	if len(items) == 0 {
		panic("generic.Pick: empty slice")
	}
	return items[r.IntBetween(0, len(items)-1)]
}

// Weighted pairs a value with its relative weight.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// Choose returns a value drawn with probability proportional to its weight.
// Non-positive weights never win. Panics if the total weight is zero.
func Choose[T any](r *Random, choices []Weighted[T]) T {
	total := 0
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total == 0 {
		panic("generic.Choose: zero total weight")
	}
	roll := r.IntBetween(0, total-1)
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		if roll < c.Weight {
			return c.Value
		}
		roll -= c.Weight
	}
	// unreachable: roll < total
	return choices[len(choices)-1].Value
}
