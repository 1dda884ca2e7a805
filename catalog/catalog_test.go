package catalog_test

import (
	"testing"

	"github.com/PedroMissola/analisador-relatorios/catalog"
	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivisions_EveryDivisionIsPopulated(t *testing.T) {
	divisions := catalog.Divisions()
	require.Len(t, divisions, 5)

	for _, d := range divisions {
		assert.NotEmpty(t, d.Name())
		assert.True(t, d.BaseSalary().IsPositive(), "%s base salary", d)
		assert.NotEmpty(t, d.ExpenseCategories(), "%s expense categories", d)
		require.NotEmpty(t, d.Departments(), "%s departments", d)

		for _, dept := range d.Departments() {
			assert.Equal(t, d, dept.Division(), "%s should point back to %s", dept, d)
			assert.True(t, d.Owns(dept))
			assert.NotEmpty(t, dept.Titles(), "%s titles", dept)
		}
	}
}

func TestDivisions_OnlyCommercialIsSales(t *testing.T) {
	for _, d := range catalog.Divisions() {
		assert.Equal(t, d == catalog.Commercial, d.IsSales(), d.Name())
	}
}

func TestDivisions_BaseSalaries(t *testing.T) {
	assert.True(t, decimal.NewFromInt(4500).Equal(catalog.Technology.BaseSalary()))
	assert.True(t, decimal.NewFromInt(4000).Equal(catalog.Commercial.BaseSalary()))
	assert.True(t, decimal.NewFromInt(2800).Equal(catalog.Operations.BaseSalary()))
	assert.True(t, decimal.NewFromInt(3800).Equal(catalog.Administrative.BaseSalary()))
	assert.True(t, decimal.NewFromInt(3500).Equal(catalog.HumanResources.BaseSalary()))
}

func TestDivision_DoesNotOwnForeignDepartment(t *testing.T) {
	assert.False(t, catalog.Technology.Owns(catalog.Legal))
	assert.False(t, catalog.HumanResources.Owns(catalog.SoftwareEngineering))
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	titles := catalog.SoftwareEngineering.Titles()
	titles[0] = "changed"
	assert.NotEqual(t, "changed", catalog.SoftwareEngineering.Titles()[0])
}

func TestNameKeyedContract(t *testing.T) {
	names := catalog.DivisionNames()
	assert.Equal(t, "Tecnologia e Produto", names[0])

	depts := catalog.DepartmentNames("Recursos Humanos")
	assert.Equal(t, []string{"Aquisição de Talentos", "Business Partner", "Departamento Pessoal"}, depts)

	titles := catalog.Titles("Administrativo e Financeiro", "Jurídico")
	assert.Contains(t, titles, "Especialista em Compliance")

	categories := catalog.ExpenseCategories("Comercial (Vendas e Mkt)")
	assert.Contains(t, categories, catalog.HotelTravel)
}

func TestNameKeyedContract_UnknownNamesPanic(t *testing.T) {
	assert.Panics(t, func() { catalog.DepartmentNames("Diretoria") })
	assert.Panics(t, func() { catalog.ExpenseCategories("") })
	// Department exists, but in another division.
	assert.Panics(t, func() { catalog.Titles("Tecnologia e Produto", "Jurídico") })
}

func TestLookup(t *testing.T) {
	d, err := catalog.LookupDivision("Operações e Logística")
	require.NoError(t, err)
	assert.Equal(t, catalog.Operations, d)

	dept, err := catalog.LookupDepartment(d, "Produção (Fábrica)")
	require.NoError(t, err)
	assert.Equal(t, catalog.Production, dept)

	_, err = catalog.LookupDivision("Marketing")
	assert.ErrorIs(t, err, generic.ErrUnknownDivision)

	_, err = catalog.LookupDepartment(catalog.Technology, "Produção (Fábrica)")
	assert.ErrorIs(t, err, generic.ErrUnknownDepartment)
}

func TestOutOfRangeIdentifierPanics(t *testing.T) {
	assert.Panics(t, func() { _ = catalog.Division(42).Name() })
	assert.Panics(t, func() { _ = catalog.Department(-1).Titles() })
}

func TestExpenseCategory_HighCost(t *testing.T) {
	high := []catalog.ExpenseCategory{catalog.HotelTravel, catalog.SoftwareLicense, catalog.Conference}
	for _, c := range high {
		assert.True(t, c.IsHighCost(), c)
		min, max := c.AmountRange()
		assert.True(t, catalog.HighCostMin.Equal(min))
		assert.True(t, catalog.HighCostMax.Equal(max))
	}

	assert.False(t, catalog.Coffee.IsHighCost())
	min, max := catalog.Coffee.AmountRange()
	assert.Equal(t, "15", min.String())
	assert.Equal(t, "120", max.String())
}
