package generic_test

import (
	"testing"
	"time"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/stretchr/testify/assert"
)

func TestRandom_SameSeedSameSequence(t *testing.T) {
	a, b := generic.NewRandom(42), generic.NewRandom(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uniform(0, 1), b.Uniform(0, 1))
		assert.Equal(t, a.IntBetween(5, 60), b.IntBetween(5, 60))
	}
}

func TestRandom_NamesFollowTheSeed(t *testing.T) {
	// GIVEN: Two sources with the same seed and a third with another seed
	// WHEN: The third source draws between the other two
	// THEN: The first two still produce identical names

	a, b := generic.NewRandom(199), generic.NewRandom(199)
	other := generic.NewRandom(200)

	for i := 0; i < 50; i++ {
		nameA := a.Name()
		other.Name()
		other.Uniform(0, 1)
		nameB := b.Name()

		assert.NotEmpty(t, nameA)
		assert.Equal(t, nameA, nameB)
	}
}

func TestRandom_Bounds(t *testing.T) {
	r := generic.NewRandom(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		f := r.Uniform(1.0, 3.5)
		assert.GreaterOrEqual(t, f, 1.0)
		assert.LessOrEqual(t, f, 3.5)

		n := r.IntBetween(4, 6)
		assert.GreaterOrEqual(t, n, 4)
		assert.LessOrEqual(t, n, 6)
		seen[n] = true
	}
	// Both ends are reachable.
	assert.Len(t, seen, 3)
}

func TestRandom_DateBetween(t *testing.T) {
	r := generic.NewRandom(3)
	from := generic.NewDate(2025, time.January, 30)
	to := generic.NewDate(2025, time.February, 2)

	seen := map[time.Time]bool{}
	for i := 0; i < 500; i++ {
		d := r.DateBetween(from, to)
		assert.False(t, d.Before(from))
		assert.False(t, d.After(to))
		seen[d] = true
	}
	assert.Len(t, seen, 4)

	assert.Equal(t, from, r.DateBetween(from, from))
	assert.Equal(t, to, r.DateBetween(to, from))
}

func TestChoose_Weights(t *testing.T) {
	// GIVEN: An 80/15/5 distribution
	// WHEN: Drawing 10000 times
	// THEN: Frequencies land near the weights and zero weight never wins

	r := generic.NewRandom(11)
	choices := []generic.Weighted[string]{
		{Value: "a", Weight: 80},
		{Value: "b", Weight: 15},
		{Value: "c", Weight: 5},
		{Value: "never", Weight: 0},
	}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[generic.Choose(r, choices)]++
	}

	assert.InDelta(t, 8000, counts["a"], 300)
	assert.InDelta(t, 1500, counts["b"], 250)
	assert.InDelta(t, 500, counts["c"], 150)
	assert.Zero(t, counts["never"])
}

func TestChance(t *testing.T) {
	r := generic.NewRandom(5)
	hits := 0
	for i := 0; i < 10000; i++ {
		if r.Chance(0.9) {
			hits++
		}
	}
	assert.InDelta(t, 9000, hits, 200)

	assert.False(t, r.Chance(0))
}

func TestPick(t *testing.T) {
	r := generic.NewRandom(1)
	items := []string{"x", "y"}
	for i := 0; i < 20; i++ {
		assert.Contains(t, items, generic.Pick(r, items))
	}
	assert.Panics(t, func() { generic.Pick(r, []string{}) })
}
