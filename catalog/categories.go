package catalog

import "github.com/shopspring/decimal"

// ExpenseCategory is the label stored as an expense description.
type ExpenseCategory string

const (
	// Tecnologia e Produto
	SoftwareLicense ExpenseCategory = "Licença Software"
	Training        ExpenseCategory = "Curso/Treinamento"
	Hardware        ExpenseCategory = "Equipamento (Hardware)"
	Coffee          ExpenseCategory = "Café"
	CloudServer     ExpenseCategory = "Servidor Cloud"

	// Comercial (Vendas e Mkt)
	ClientLunch ExpenseCategory = "Almoço Cliente"
	RideApp     ExpenseCategory = "Transporte App"
	HotelTravel ExpenseCategory = "Viagem (Hotel)"
	Conference  ExpenseCategory = "Conferência"
	OnlineAds   ExpenseCategory = "Anúncios Online"

	// Operações e Logística
	Uniform              ExpenseCategory = "Uniforme"
	Canteen              ExpenseCategory = "Cantina"
	OfficeSupplies       ExpenseCategory = "Material de Escritório"
	CharteredTransport   ExpenseCategory = "Transporte Fretado"
	EquipmentMaintenance ExpenseCategory = "Manutenção Equipamento"

	// Administrativo e Financeiro
	Stationery         ExpenseCategory = "Papelaria"
	CourierService     ExpenseCategory = "Serviço de Motoboy"
	CleaningSupplies   ExpenseCategory = "Material de Limpeza"
	ExternalConsulting ExpenseCategory = "Consultoria Externa"

	// Recursos Humanos
	OnboardingGifts ExpenseCategory = "Brindes (Onboarding)"
	JobBoard        ExpenseCategory = "Plataforma de Vagas"
	InternalEvent   ExpenseCategory = "Evento Interno"
	AdmissionExam   ExpenseCategory = "Exame Admissional"
)

// Expense amount bands, inclusive.
var (
	HighCostMin = decimal.RequireFromString("150.00")
	HighCostMax = decimal.RequireFromString("2500.00")
	LowCostMin  = decimal.RequireFromString("15.00")
	LowCostMax  = decimal.RequireFromString("120.00")
)

// IsHighCost reports whether the category draws from the high amount band
// (travel/lodging, software licensing, conference attendance).
func (c ExpenseCategory) IsHighCost() bool {
	switch c {
	case HotelTravel, SoftwareLicense, Conference:
		return true
	}
	return false
}

// AmountRange returns the inclusive amount band for the category.
func (c ExpenseCategory) AmountRange() (min, max decimal.Decimal) {
	if c.IsHighCost() {
		return HighCostMin, HighCostMax
	}
	return LowCostMin, LowCostMax
}

func (c ExpenseCategory) String() string { return string(c) }
