package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ardenpalme/app/internal/core/domain"
)

// errorBody is the envelope of every non-2xx JSON response.
type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	writeJSON(w, status, errorBody{Code: code, Message: message, Details: details})
}

// writeServiceError maps err onto a status code and error envelope. A
// workflow error adds the failed step and, when report is set, every step
// outcome to the details.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, report *domain.WorkflowReport) {
	details := map[string]any{}
	var werr *domain.WorkflowError
	if errors.As(err, &werr) {
		details["workflow"] = werr.Workflow
		details["step"] = werr.Step
	}
	if report != nil && len(report.Steps) > 0 {
		details["steps"] = report.Steps
	}

	var (
		verr   *domain.ValidationError
		serr   *domain.StorageError
		status int
		code   string
	)
	switch {
	case errors.As(err, &verr):
		status, code = http.StatusBadRequest, "validation_failed"
		details["fields"] = verr.Fields
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusBadRequest, "validation_failed"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrObjectNotFound):
		status, code = http.StatusNotFound, "object_not_found"
	case errors.Is(err, domain.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrConstraint):
		status, code = http.StatusConflict, "constraint_violation"
	case errors.As(err, &serr):
		status, code = http.StatusBadGateway, "storage_error"
		if serr.Status != 0 {
			details["upstreamStatus"] = serr.Status
		}
	case errors.Is(err, context.DeadlineExceeded):
		status, code = http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		status, code = http.StatusRequestTimeout, "cancelled"
	default:
		status, code = http.StatusInternalServerError, "internal"
	}

	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
	if len(details) == 0 {
		details = nil
	}
	writeError(w, status, code, err.Error(), details)
}

// decodeJSON reads a JSON body of at most 1 MiB into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON", map[string]any{"error": err.Error()})
		return false
	}
	return true
}
