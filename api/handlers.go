/*
handlers.go - HTTP handlers of the report intake service

PURPOSE:
  Turns report requests into queue tasks and exposes health probes. The
  service never computes reports; a separate worker consumes the queue.

ENDPOINTS:
  POST /api/reports        {"tipo_relatorio", "parametros"} -> 202 + task id
  GET  /api/report-types   Accepted report types
  GET  /health             Always 200 while the process serves
  GET  /health/queue       200 when the queue answers PING

ERROR HANDLING:
  Errors are returned as JSON ErrorResponse with a stable code:
  - 400 invalid_body, invalid_report_type
  - 503 queue_unavailable: no queue was reachable at startup
  - 503 enqueue_failed:    the queue failed during this request
  - 503 queue_unreachable: health probe PING failed

ARCHITECTURE:
  Handler holds its collaborators as interfaces; a nil Queue means the
  queue was unreachable when the process started.

SEE ALSO:
  - dataset.go: Admin dataset regeneration
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/logger"
	"github.com/PedroMissola/analisador-relatorios/queue"
	"github.com/PedroMissola/analisador-relatorios/workforce"
	"github.com/rs/zerolog/hlog"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// TaskQueue is the producer side of the report queue.
type TaskQueue interface {
	Enqueue(ctx context.Context, task queue.Task) error
	Ping(ctx context.Context) error
}

// DatasetGenerator rebuilds the synthetic dataset.
type DatasetGenerator interface {
	Regenerate(ctx context.Context, employees int, seed int64) (workforce.Summary, error)
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	// Queue is nil when no queue backend was reachable at startup.
	Queue TaskQueue
	// Generator is nil when the admin dataset endpoint is disabled.
	Generator DatasetGenerator
	// DefaultEmployees is used when a regeneration request names no count.
	DefaultEmployees int

	log *logger.Logger
}

// NewHandler creates a handler. q and gen may be nil.
func NewHandler(q TaskQueue, gen DatasetGenerator, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		Queue:            q,
		Generator:        gen,
		DefaultEmployees: 5000,
		log:              log.Named("api"),
	}
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// RequestReport validates a report request and enqueues it.
func (h *Handler) RequestReport(w http.ResponseWriter, r *http.Request) {
	if h.Queue == nil {
		writeError(w, http.StatusServiceUnavailable, CodeQueueUnavailable,
			"Serviço indisponível (fila não conectada)", nil)
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidBody, "Invalid request body", err)
		return
	}
	reportType, err := queue.ParseReportType(req.ReportType)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidReportType, "Unknown report type", err)
		return
	}

	task := queue.NewTask(reportType, req.Params)
	if err := h.Queue.Enqueue(r.Context(), task); err != nil {
		hlog.FromRequest(r).Error().Err(err).
			Str("task_id", task.ID).
			Str("report_type", string(reportType)).
			Msg("enqueue failed")
		writeError(w, http.StatusServiceUnavailable, CodeEnqueueFailed, "Erro ao enfileirar tarefa", err)
		return
	}

	hlog.FromRequest(r).Info().
		Str("task_id", task.ID).
		Str("report_type", string(reportType)).
		Msg("report queued")

	writeJSON(w, http.StatusAccepted, ReportAcceptedResponse{
		Status:                 StatusQueued,
		TaskID:                 task.ID,
		ExpectedOutputFilename: task.OutputFilename,
		Info:                   InfoQueued,
	})
}

// ListReportTypes returns the accepted report types.
func (h *Handler) ListReportTypes(w http.ResponseWriter, r *http.Request) {
	types := queue.ReportTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	writeJSON(w, http.StatusOK, ReportTypesResponse{ReportTypes: names})
}

// =============================================================================
// HEALTH
// =============================================================================

// Health reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// QueueHealth pings the queue backend.
func (h *Handler) QueueHealth(w http.ResponseWriter, r *http.Request) {
	if h.Queue == nil {
		writeError(w, http.StatusServiceUnavailable, CodeQueueUnavailable,
			"Serviço indisponível (configuração)", nil)
		return
	}
	if err := h.Queue.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, CodeQueueUnreachable, "Fila desconectada", err)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Queue: "connected"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string, err error) {
	resp := ErrorResponse{Error: message, Code: code}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// decodeOptional decodes a JSON body into v. An empty body leaves v untouched.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, generic.ErrGenerationInProgress):
		return http.StatusConflict
	case generic.IsClientError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
