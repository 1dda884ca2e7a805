/*
catalog.go - Static organization structure: divisions, departments, titles

PURPOSE:
  The hand-authored taxonomy every synthetic employee is drawn from:
  division -> departments -> job titles, division -> expense categories,
  and a monthly base salary per division. Pure data, read-only.

TYPED KEYS:
  Division and Department are small integer identifiers indexing fixed
  arrays. A Department carries its owning Division, so code holding a
  Department cannot pair it with a foreign division. String lookups exist
  only at the edges (storage reads, name-keyed queries).

NAME-KEYED CONTRACT:
  DivisionNames()                       all division names, catalog order
  DepartmentNames(division)             departments of a division
  Titles(division, department)          titles of a department
  ExpenseCategories(division)           expense labels of a division

  Unknown names are programming errors: these functions panic with a
  *generic.LookupError. Use LookupDivision / LookupDepartment when the
  name comes from outside (e.g. a database row).

SEE ALSO:
  - categories.go: ExpenseCategory and the high-cost set
  - synth/employees.go: Draws division -> department -> title
*/
package catalog

import (
	"strconv"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// Division identifies one entry of the division table.
type Division int

const (
	Technology Division = iota
	Commercial
	Operations
	Administrative
	HumanResources

	divisionCount
)

// Department identifies one entry of the department table.
type Department int

const (
	SoftwareEngineering Department = iota
	Infrastructure
	InformationSecurity
	ProductManagement

	SalesExecutive
	PerformanceMarketing
	BrandMarketing

	SupplyChain
	Production
	CustomerService

	Finance
	Legal
	Facilities

	TalentAcquisition
	BusinessPartner
	PersonnelDepartment

	departmentCount
)

// =============================================================================
// TABLES
// =============================================================================

type divisionInfo struct {
	name        string
	baseSalary  decimal.Decimal
	sales       bool
	departments []Department
	expenses    []ExpenseCategory
}

type departmentInfo struct {
	name     string
	division Division
	titles   []string
}

var divisions = [divisionCount]divisionInfo{
	Technology: {
		name:        "Tecnologia e Produto",
		baseSalary:  decimal.NewFromInt(4500),
		departments: []Department{SoftwareEngineering, Infrastructure, InformationSecurity, ProductManagement},
		expenses:    []ExpenseCategory{SoftwareLicense, Training, Hardware, Coffee, CloudServer},
	},
	Commercial: {
		name:        "Comercial (Vendas e Mkt)",
		baseSalary:  decimal.NewFromInt(4000),
		sales:       true,
		departments: []Department{SalesExecutive, PerformanceMarketing, BrandMarketing},
		expenses:    []ExpenseCategory{ClientLunch, RideApp, HotelTravel, Conference, OnlineAds},
	},
	Operations: {
		name:        "Operações e Logística",
		baseSalary:  decimal.NewFromInt(2800),
		departments: []Department{SupplyChain, Production, CustomerService},
		expenses:    []ExpenseCategory{Uniform, Canteen, OfficeSupplies, CharteredTransport, EquipmentMaintenance},
	},
	Administrative: {
		name:        "Administrativo e Financeiro",
		baseSalary:  decimal.NewFromInt(3800),
		departments: []Department{Finance, Legal, Facilities},
		expenses:    []ExpenseCategory{Stationery, CourierService, Coffee, CleaningSupplies, ExternalConsulting},
	},
	HumanResources: {
		name:        "Recursos Humanos",
		baseSalary:  decimal.NewFromInt(3500),
		departments: []Department{TalentAcquisition, BusinessPartner, PersonnelDepartment},
		expenses:    []ExpenseCategory{OnboardingGifts, JobBoard, Coffee, InternalEvent, AdmissionExam},
	},
}

var departments = [departmentCount]departmentInfo{
	SoftwareEngineering: {"Engenharia de Software", Technology, []string{
		"Engenheiro de Software Jr", "Engenheiro de Software Pl", "Engenheiro de Software Sr", "Arquiteto de Soluções"}},
	Infrastructure: {"Infraestrutura (SRE)", Technology, []string{
		"Analista de Infraestrutura", "Engenheiro SRE", "Administrador de Redes"}},
	InformationSecurity: {"Segurança da Informação", Technology, []string{
		"Analista de Segurança", "Especialista em Cibersegurança"}},
	ProductManagement: {"Gestão de Produto", Technology, []string{
		"Product Manager", "UX/UI Designer", "Product Owner", "Analista de QA"}},

	SalesExecutive: {"Vendas (Executivo)", Commercial, []string{
		"Executivo de Contas", "Gerente de Vendas", "Sales Development Rep (SDR)", "Analista de Pós-Venda"}},
	PerformanceMarketing: {"Marketing (Performance)", Commercial, []string{
		"Analista de Marketing Digital", "Especialista SEO/SEM", "Analista de BI"}},
	BrandMarketing: {"Marketing (Marca)", Commercial, []string{
		"Designer Gráfico", "Assessor de Imprensa", "Social Media", "Produtor de Conteúdo"}},

	SupplyChain: {"Cadeia de Suprimentos", Operations, []string{
		"Analista de Logística", "Comprador", "Gerente de Supply Chain"}},
	Production: {"Produção (Fábrica)", Operations, []string{
		"Operador de Máquina", "Supervisor de Produção", "Técnico de Manutenção"}},
	CustomerService: {"Atendimento ao Cliente", Operations, []string{
		"Agente de Atendimento", "Supervisor de Call Center", "Analista de Suporte N1"}},

	Finance: {"Financeiro (Controladoria)", Administrative, []string{
		"Analista Financeiro", "Contador", "Auditor Interno", "Tesoureiro"}},
	Legal: {"Jurídico", Administrative, []string{
		"Advogado Corporativo", "Assistente Jurídico", "Especialista em Compliance"}},
	Facilities: {"Facilities (Adm)", Administrative, []string{
		"Assistente Administrativo", "Recepcionista", "Técnico de Manutenção Predial", "Auxiliar de Limpeza"}},

	TalentAcquisition: {"Aquisição de Talentos", HumanResources, []string{
		"Recrutador (Tech Recruiter)", "Assistente de RH", "Talent Sourcer"}},
	BusinessPartner: {"Business Partner", HumanResources, []string{
		"HR Business Partner", "Analista de DHO", "Especialista em L&D"}},
	PersonnelDepartment: {"Departamento Pessoal", HumanResources, []string{
		"Analista de Folha de Pagamento", "Especialista em Benefícios"}},
}

// =============================================================================
// TYPED ACCESS
// =============================================================================

// Divisions returns every division in catalog order.
func Divisions() []Division {
	out := make([]Division, divisionCount)
	for i := range out {
		out[i] = Division(i)
	}
	return out
}

func (d Division) info() divisionInfo {
	if d < 0 || d >= divisionCount {
		panic(generic.NewLookupError("division", d.String()))
	}
	return divisions[d]
}

func (d Division) String() string {
	if d < 0 || d >= divisionCount {
		return "Division(" + strconv.Itoa(int(d)) + ")"
	}
	return divisions[d].name
}

func (d Division) Name() string { return d.info().name }
func (d Division) BaseSalary() decimal.Decimal { return d.info().baseSalary }
func (d Division) IsSales() bool { return d.info().sales }
func (d Division) Departments() []Department { return clone(d.info().departments) }
func (d Division) ExpenseCategories() []ExpenseCategory { return clone(d.info().expenses) }

// Owns reports whether dept belongs to d.
func (d Division) Owns(dept Department) bool {
	return dept >= 0 && dept < departmentCount && departments[dept].division == d
}

func (d Department) info() departmentInfo {
	if d < 0 || d >= departmentCount {
		panic(generic.NewLookupError("department", d.String()))
	}
	return departments[d]
}

func (d Department) String() string {
	if d < 0 || d >= departmentCount {
		return "Department(" + strconv.Itoa(int(d)) + ")"
	}
	return departments[d].name
}

func (d Department) Name() string { return d.info().name }
func (d Department) Division() Division { return d.info().division }
func (d Department) Titles() []string { return clone(d.info().titles) }

// HasTitle reports whether title is one of the department's job titles.
func (d Department) HasTitle(title string) bool {
	for _, t := range d.info().titles {
		if t == title {
			return true
		}
	}
	return false
}

// =============================================================================
// NAME LOOKUPS
// =============================================================================

// LookupDivision resolves a division by name.
func LookupDivision(name string) (Division, error) {
	for i := range divisions {
		if divisions[i].name == name {
			return Division(i), nil
		}
	}
	return 0, generic.NewLookupError("division", name)
}

// LookupDepartment resolves a department by name within a division.
func LookupDepartment(division Division, name string) (Department, error) {
	for _, dept := range division.info().departments {
		if departments[dept].name == name {
			return dept, nil
		}
	}
	return 0, generic.NewLookupError("department", name)
}

func mustDivision(name string) Division {
	d, err := LookupDivision(name)
	if err != nil {
		panic(err)
	}
	return d
}

func mustDepartment(division, name string) Department {
	d, err := LookupDepartment(mustDivision(division), name)
	if err != nil {
		panic(err)
	}
	return d
}

// DivisionNames returns all division names in catalog order.
func DivisionNames() []string {
	names := make([]string, 0, divisionCount)
	for _, d := range divisions {
		names = append(names, d.name)
	}
	return names
}

// DepartmentNames returns the department names of a division. Panics on an
// unknown division.
func DepartmentNames(division string) []string {
	depts := mustDivision(division).info().departments
	names := make([]string, len(depts))
	for i, dept := range depts {
		names[i] = departments[dept].name
	}
	return names
}

// Titles returns the job titles of a department. Panics on an unknown
// division or a department outside it.
func Titles(division, department string) []string {
	return mustDepartment(division, department).Titles()
}

// ExpenseCategories returns the expense labels of a division. Panics on an
// unknown division.
func ExpenseCategories(division string) []ExpenseCategory {
	return mustDivision(division).ExpenseCategories()
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

