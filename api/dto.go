/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON shapes of the intake API. Field names of the report request and its
  acceptance response are shared with existing clients and stay in
  Portuguese.

NAMING CONVENTION:
  - *Request:  Request body types from clients
  - *Response: Response bodies

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - queue/task.go: The task these requests become
*/
package api

import "github.com/PedroMissola/analisador-relatorios/workforce"

// =============================================================================
// REPORTS
// =============================================================================

// ReportRequest asks for one report.
type ReportRequest struct {
	ReportType string         `json:"tipo_relatorio"`
	Params     map[string]any `json:"parametros"`
}

// ReportAcceptedResponse confirms a task was queued.
type ReportAcceptedResponse struct {
	Status                 string `json:"status"`
	TaskID                 string `json:"task_id"`
	ExpectedOutputFilename string `json:"output_filename_esperado"`
	Info                   string `json:"info"`
}

// Acceptance texts.
const (
	StatusQueued = "Relatório enfileirado"
	InfoQueued   = "O relatório será processado em segundo plano."
)

// ReportTypesResponse lists the accepted report types.
type ReportTypesResponse struct {
	ReportTypes []string `json:"report_types"`
}

// =============================================================================
// DATASET
// =============================================================================

// RegenerateDatasetRequest is the optional body of POST /api/admin/dataset.
type RegenerateDatasetRequest struct {
	Employees int   `json:"employees"`
	Seed      int64 `json:"seed"`
}

// RegenerateDatasetResponse reports what was written.
type RegenerateDatasetResponse struct {
	Status  string            `json:"status"`
	Summary workforce.Summary `json:"summary"`
}

// =============================================================================
// HEALTH & ERRORS
// =============================================================================

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status string `json:"status"`
	Queue  string `json:"queue,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Error codes.
const (
	CodeInvalidBody          = "invalid_body"
	CodeInvalidReportType    = "invalid_report_type"
	CodeQueueUnavailable     = "queue_unavailable"
	CodeQueueUnreachable     = "queue_unreachable"
	CodeEnqueueFailed        = "enqueue_failed"
	CodeInvalidCount         = "invalid_employee_count"
	CodeGenerationInProgress = "generation_in_progress"
	CodeGenerationFailed     = "generation_failed"
	CodeGenerationDisabled   = "generation_disabled"
)
