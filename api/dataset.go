package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PedroMissola/analisador-relatorios/generic"
	"github.com/PedroMissola/analisador-relatorios/synth"
	"github.com/rs/zerolog/hlog"
)

// =============================================================================
// DATASET ADMIN - Destructive regeneration of the synthetic dataset
// =============================================================================

// RegenerateDataset drops the current dataset and generates a new one.
//
// Body (optional): {"employees": 5000, "seed": 42}
// Returns 404 when no generator is configured, 400 above synth.MaxEmployees
// and 409 while another regeneration is still running.
func (h *Handler) RegenerateDataset(w http.ResponseWriter, r *http.Request) {
	if h.Generator == nil {
		writeError(w, http.StatusNotFound, CodeGenerationDisabled, "Dataset generation is disabled", nil)
		return
	}

	var req RegenerateDatasetRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidBody, "Invalid request body", err)
		return
	}
	if req.Employees == 0 {
		req.Employees = h.DefaultEmployees
	}
	if req.Employees > synth.MaxEmployees {
		writeError(w, http.StatusBadRequest, CodeInvalidCount,
			fmt.Sprintf("employees must be at most %d", synth.MaxEmployees), nil)
		return
	}

	log := hlog.FromRequest(r)
	log.Info().Int("employees", req.Employees).Int64("seed", req.Seed).Msg("dataset regeneration started")

	summary, err := h.Generator.Regenerate(r.Context(), req.Employees, req.Seed)
	if err != nil {
		status := statusFor(err)
		code := CodeGenerationFailed
		switch {
		case errors.Is(err, generic.ErrGenerationInProgress):
			code = CodeGenerationInProgress
		case errors.Is(err, generic.ErrInvalidCount):
			code = CodeInvalidCount
		default:
			log.Error().Err(err).Msg("dataset regeneration failed")
		}
		writeError(w, status, code, "Failed to regenerate dataset", err)
		return
	}

	writeJSON(w, http.StatusOK, RegenerateDatasetResponse{Status: "ok", Summary: summary})
}
