package synth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/store/memory"
	"github.com/PedroMissola/analisador-relatorios/store/sqlite"
	"github.com/PedroMissola/analisador-relatorios/synth"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Early in the month, so October payments fall in the pending window and
// everything older is always Paid.
var now = time.Date(2025, time.November, 10, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func newSynth(store workforce.Store, seed int64) *synth.Synthesizer {
	return synth.New(store, synth.Config{Seed: seed, Now: fixedClock})
}

// =============================================================================
// BUILD - Pure generation
// =============================================================================

func TestBuild_SatisfiesEveryInvariant(t *testing.T) {
	ds, err := newSynth(memory.New(), 42).Build(500)
	require.NoError(t, err)

	require.NoError(t, ds.Validate())
	assert.Len(t, ds.Employees, 500)
	assert.Equal(t, now, ds.GeneratedAt)
}

func TestBuild_SameSeedSameDataset(t *testing.T) {
	a, err := newSynth(memory.New(), 7).Build(200)
	require.NoError(t, err)
	b, err := newSynth(memory.New(), 7).Build(200)
	require.NoError(t, err)

	assert.Equal(t, a.Summary(), b.Summary())
	for i := range a.Employees {
		assert.Equal(t, a.Employees[i].Email, b.Employees[i].Email)
		assert.True(t, a.Employees[i].MonthlySalary.Equal(b.Employees[i].MonthlySalary))
	}
}

func TestBuild_SeedIsolatedFromOtherRuns(t *testing.T) {
	// GIVEN: A reference build with seed 7
	// WHEN: Another synthesizer with a different seed builds in between
	// THEN: A second seed 7 build still reproduces names and emails

	first, err := newSynth(memory.New(), 7).Build(50)
	require.NoError(t, err)

	_, err = newSynth(memory.New(), 8).Build(50)
	require.NoError(t, err)

	again, err := newSynth(memory.New(), 7).Build(50)
	require.NoError(t, err)

	for i := range first.Employees {
		assert.Equal(t, first.Employees[i].Name, again.Employees[i].Name)
		assert.Equal(t, first.Employees[i].Email, again.Employees[i].Email)
	}
}

func TestBuild_Distributions(t *testing.T) {
	// GIVEN: 2000 employees from a fixed seed
	// WHEN: Counting statuses, managers and histories
	// THEN: Roughly 10% are Inactive, the hierarchy is populated, and only
	//       Active employees own payments and expenses

	ds, err := newSynth(memory.New(), 2025).Build(2000)
	require.NoError(t, err)

	s := ds.Summary()
	ratio := float64(s.InactiveEmployees) / float64(s.Employees)
	assert.GreaterOrEqual(t, ratio, 0.06)
	assert.LessOrEqual(t, ratio, 0.14)

	assert.Positive(t, s.WithManager)
	assert.Less(t, s.WithManager, s.Employees, "the first employee of a department has no manager")
	assert.Positive(t, s.PendingPayments)

	active := map[workforce.EmployeeID]bool{}
	for _, e := range ds.Employees {
		active[e.ID] = e.IsActive()
	}
	perEmployee := map[workforce.EmployeeID]int{}
	for _, x := range ds.Expenses {
		require.True(t, active[x.EmployeeID])
		perEmployee[x.EmployeeID]++
	}
	for id, n := range perEmployee {
		assert.GreaterOrEqual(t, n, workforce.MinExpenses, "employee %d", id)
		assert.LessOrEqual(t, n, workforce.MaxExpenses, "employee %d", id)
	}
	assert.Len(t, perEmployee, s.ActiveEmployees)
}

func TestBuild_OnlyRecentMonthsPending(t *testing.T) {
	ds, err := newSynth(memory.New(), 99).Build(300)
	require.NoError(t, err)

	october := generic.Month{Year: 2025, Month: time.October}
	for _, p := range ds.Payments {
		if p.Status == workforce.PaymentPending {
			assert.Equal(t, october, p.ReferenceMonth)
		}
		assert.True(t, p.ReferenceMonth.Before(generic.MonthOf(now)), "current month is never paid")
	}
}

func TestBuild_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -3, synth.MaxEmployees + 1} {
		_, err := newSynth(memory.New(), 1).Build(n)
		assert.ErrorIs(t, err, generic.ErrInvalidCount)
	}
}

func TestBuild_SingleEmployee(t *testing.T) {
	ds, err := newSynth(memory.New(), 5).Build(1)
	require.NoError(t, err)

	require.Len(t, ds.Employees, 1)
	assert.Nil(t, ds.Employees[0].ManagerID)
	assert.NoError(t, ds.Validate())
}

// =============================================================================
// GENERATE - End to end through storage
// =============================================================================

func TestGenerate_EndToEndSQLite(t *testing.T) {
	ctx := context.Background()
	store, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	s := newSynth(store, 100)
	require.NoError(t, s.InitializeStorage(ctx))

	summary, err := s.Generate(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.Employees)

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, workforce.Counts{
		Employees: summary.Employees,
		Payments:  summary.Payments,
		Expenses:  summary.Expenses,
	}, counts)

	// Rebuild the dataset from storage and check it holds the same invariants.
	employees, err := store.ListEmployees(ctx)
	require.NoError(t, err)
	stored := &workforce.Dataset{GeneratedAt: now, Employees: employees}
	for _, e := range employees {
		payments, err := store.PaymentsByEmployee(ctx, e.ID)
		require.NoError(t, err)
		expenses, err := store.ExpensesByEmployee(ctx, e.ID)
		require.NoError(t, err)
		stored.Payments = append(stored.Payments, payments...)
		stored.Expenses = append(stored.Expenses, expenses...)
	}
	assert.NoError(t, stored.Validate())
}

func TestRegenerate_IsDestructiveAndRepeatable(t *testing.T) {
	// GIVEN: A database holding one generated dataset
	// WHEN: Regenerating with the same seed
	// THEN: The prior data is gone and the counts are identical

	ctx := context.Background()
	store, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	defer store.Close()

	s := newSynth(store, 31)
	first, err := s.Regenerate(ctx, 50, 0)
	require.NoError(t, err)
	second, err := s.Regenerate(ctx, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, counts.Employees)
	assert.Equal(t, second.Payments, counts.Payments)

	// A different seed replaces the dataset.
	third, err := s.Regenerate(ctx, 20, 32)
	require.NoError(t, err)
	counts, err = store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, counts.Employees)
	assert.Equal(t, third.Expenses, counts.Expenses)
}

func TestGenerate_StorageFailureAborts(t *testing.T) {
	// Writing without a schema fails and nothing is reported as generated.
	s := newSynth(memory.New(), 3)
	_, err := s.Generate(context.Background(), 10)
	assert.ErrorIs(t, err, memory.ErrNoSchema)
}

// =============================================================================
// CONCURRENCY
// =============================================================================

// blockingStore parks InitializeSchema until released.
type blockingStore struct {
	*memory.Store
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) InitializeSchema(ctx context.Context) error {
	close(b.entered)
	<-b.release
	return b.Store.InitializeSchema(ctx)
}

func TestRegenerate_SecondRunIsRejected(t *testing.T) {
	store := &blockingStore{Store: memory.New(), entered: make(chan struct{}), release: make(chan struct{})}
	s := newSynth(store, 8)

	done := make(chan error, 1)
	go func() {
		_, err := s.Regenerate(context.Background(), 5, 0)
		done <- err
	}()
	<-store.entered

	_, err := s.Regenerate(context.Background(), 5, 0)
	assert.True(t, errors.Is(err, generic.ErrGenerationInProgress))

	close(store.release)
	assert.NoError(t, <-done)
}
