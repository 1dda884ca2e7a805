package synth

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PedroMissola/analisador-relatorios/catalog"
	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	"golang.org/x/text/unicode/norm"
)

// EmailDomain is appended to every generated address.
const EmailDomain = "grandeempresa.com"

// employees generates count employees with ids 1..count.
//
// The manager pool holds, per department, the ids of senior employees seen
// so far. An employee picks its manager before being added itself, so every
// manager has a lower id and the hierarchy is a forest.
func (b *builder) employees(count int) []workforce.Employee {
	divisions := catalog.Divisions()
	earliest, latest := workforce.HireWindow(b.today)
	seniorCutoff := workforce.SeniorCutoff(b.today)
	managers := generic.NewCandidatePool[catalog.Department, workforce.EmployeeID]()

	out := make([]workforce.Employee, 0, count)
	for i := 1; i <= count; i++ {
		id := workforce.EmployeeID(i)

		division := generic.Pick(b.rng, divisions)
		department := generic.Pick(b.rng, division.Departments())
		title := generic.Pick(b.rng, department.Titles())

		factor := b.rng.Uniform(workforce.MinSeniorityFactor, workforce.MaxSeniorityFactor)
		name := b.rng.Name()

		e := workforce.Employee{
			ID:            id,
			Name:          name,
			Email:         Email(name, id),
			Division:      division,
			Department:    department,
			Title:         title,
			MonthlySalary: generic.Scale(division.BaseSalary(), factor),
			HireDate:      b.rng.DateBetween(earliest, latest),
			Status:        workforce.StatusInactive,
		}
		if b.rng.Chance(workforce.ActiveProbability) {
			e.Status = workforce.StatusActive
		}
		if manager, ok := managers.Pick(b.rng, department); ok {
			e.ManagerID = &manager
		}
		if !e.HireDate.After(seniorCutoff) {
			managers.Add(department, id)
		}

		out = append(out, e)
	}
	return out
}

var nonSlug = regexp.MustCompile(`[^a-z0-9.]+`)

// Email builds "<name-slug><id>@grandeempresa.com". The id suffix keeps
// addresses unique even when names repeat.
func Email(name string, id workforce.EmployeeID) string {
	return Slug(name) + strconv.FormatInt(int64(id), 10) + "@" + EmailDomain
}

// Slug lowercases name, drops accents, joins words with dots and removes
// anything else that is not a letter or digit.
func Slug(name string) string {
	var sb strings.Builder
	for _, r := range norm.NFD.String(strings.ToLower(name)) {
		// combining marks left behind by NFD
		if r >= 0x300 && r <= 0x36f {
			continue
		}
		sb.WriteRune(r)
	}
	s := strings.Join(strings.Fields(sb.String()), ".")
	s = nonSlug.ReplaceAllString(s, "")
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", ".")
	}
	return strings.Trim(s, ".")
}
