/*
Package queue carries report tasks from the intake service to the report
worker over a Redis list.

TASK HANDOFF CONTRACT:
  Producer LPUSHes one JSON document per task onto the list (default
  "fila_relatorios"); the worker BRPOPs from the other end, so tasks are
  consumed in arrival order.

    {
      "task_id":         "<uuid v4>",
      "tipo_relatorio":  "GASTOS_POR_DEPARTAMENTO",
      "parametros":      {"departamento": "Engenharia de Software"},
      "output_filename": "relatorio_GASTOS_POR_DEPARTAMENTO_<uuid>.csv"
    }

  The field names are shared with workers outside this repository.

SEE ALSO:
  - redis.go: RedisQueue
  - api/handlers.go: Producer side
*/
package queue

import (
	"fmt"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/google/uuid"
)

// DefaultName is the Redis list tasks are pushed to.
const DefaultName = "fila_relatorios"

// ReportType is the closed set of reports a worker knows how to build.
type ReportType string

const (
	// Expenses grouped by department.
	ExpensesByDepartment ReportType = "GASTOS_POR_DEPARTAMENTO"
	// Payments still Pendente.
	PendingPayments ReportType = "PAGAMENTOS_PENDENTES"
	// Headcount and payroll per division.
	DivisionSummary ReportType = "RESUMO_POR_DIVISAO"
)

// ReportTypes lists every accepted type.
func ReportTypes() []ReportType {
	return []ReportType{ExpensesByDepartment, PendingPayments, DivisionSummary}
}

// ParseReportType returns the ReportType named s.
func ParseReportType(s string) (ReportType, error) {
	for _, t := range ReportTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", generic.ErrUnknownReportType, s)
}

func (t ReportType) String() string { return string(t) }

// Task is one unit of work for the report worker.
type Task struct {
	ID             string         `json:"task_id"`
	ReportType     ReportType     `json:"tipo_relatorio"`
	Params         map[string]any `json:"parametros"`
	OutputFilename string         `json:"output_filename"`
}

// NewTask mints a task with a fresh UUIDv4 id. Nil params become an empty
// object so workers always receive "parametros": {}.
func NewTask(reportType ReportType, params map[string]any) Task {
	if params == nil {
		params = map[string]any{}
	}
	id := uuid.NewString()
	return Task{
		ID:             id,
		ReportType:     reportType,
		Params:         params,
		OutputFilename: OutputFilename(reportType, id),
	}
}

// OutputFilename is the CSV name the worker writes for a task.
func OutputFilename(reportType ReportType, taskID string) string {
	return fmt.Sprintf("relatorio_%s_%s.csv", reportType, taskID)
}
