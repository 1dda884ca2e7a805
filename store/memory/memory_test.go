package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PedroMissola/analisador-relatorios/catalog"
	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/store/memory"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset() *workforce.Dataset {
	return &workforce.Dataset{
		Employees: []workforce.Employee{
			{ID: 1, Email: "a1@grandeempresa.com", Division: catalog.Operations, Department: catalog.Production,
				Title: "Operador de Máquina", MonthlySalary: decimal.NewFromInt(3000),
				HireDate: generic.NewDate(2020, time.May, 1), Status: workforce.StatusActive},
		},
		Payments: []workforce.Payment{
			{EmployeeID: 1, ReferenceMonth: generic.Month{Year: 2020, Month: time.May},
				Amount: decimal.NewFromInt(3000), PaidOn: generic.NewDate(2020, time.May, 5), Status: workforce.PaymentPaid},
		},
		Expenses: []workforce.Expense{
			{EmployeeID: 1, Description: catalog.Canteen, Amount: decimal.NewFromInt(20),
				SpentOn: generic.NewDate(2021, time.March, 3), Approval: workforce.ApprovalApproved},
		},
	}
}

func TestMemory_WriteRequiresSchema(t *testing.T) {
	store := memory.New()
	err := store.WriteDataset(context.Background(), dataset())
	assert.ErrorIs(t, err, memory.ErrNoSchema)
}

func TestMemory_WriteAndRead(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.InitializeSchema(ctx))
	require.NoError(t, store.WriteDataset(ctx, dataset()))

	counts, _ := store.Counts(ctx)
	assert.Equal(t, workforce.Counts{Employees: 1, Payments: 1, Expenses: 1}, counts)

	payments, _ := store.PaymentsByEmployee(ctx, 1)
	assert.Len(t, payments, 1)
	expenses, _ := store.ExpensesByEmployee(ctx, 1)
	assert.Len(t, expenses, 1)
}

func TestMemory_RejectsWholeDatasetOnViolation(t *testing.T) {
	// GIVEN: A stored dataset
	// WHEN: A second write repeats an email
	// THEN: Nothing of the second write is stored

	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.InitializeSchema(ctx))
	require.NoError(t, store.WriteDataset(ctx, dataset()))

	second := dataset()
	second.Employees[0].ID = 2
	second.Payments[0].EmployeeID = 2
	second.Expenses[0].EmployeeID = 2

	err := store.WriteDataset(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, generic.ErrConstraint))

	counts, _ := store.Counts(ctx)
	assert.Equal(t, workforce.Counts{Employees: 1, Payments: 1, Expenses: 1}, counts)
}

func TestMemory_ReferenceRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(ds *workforce.Dataset)
	}{
		{"missing manager", func(ds *workforce.Dataset) {
			id := workforce.EmployeeID(7)
			ds.Employees[0].ManagerID = &id
		}},
		{"payment for missing employee", func(ds *workforce.Dataset) { ds.Payments[0].EmployeeID = 3 }},
		{"duplicate payment month", func(ds *workforce.Dataset) { ds.Payments = append(ds.Payments, ds.Payments[0]) }},
		{"expense for missing employee", func(ds *workforce.Dataset) { ds.Expenses[0].EmployeeID = 3 }},
		{"bad approval", func(ds *workforce.Dataset) { ds.Expenses[0].Approval = "?" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New()
			require.NoError(t, store.InitializeSchema(ctx))

			ds := dataset()
			tt.mutate(ds)
			assert.ErrorIs(t, store.WriteDataset(ctx, ds), generic.ErrConstraint)
		})
	}
}

func TestMemory_InitializeSchemaClears(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.InitializeSchema(ctx))
	require.NoError(t, store.WriteDataset(ctx, dataset()))
	require.NoError(t, store.InitializeSchema(ctx))

	counts, _ := store.Counts(ctx)
	assert.Equal(t, workforce.Counts{}, counts)
}
