package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/centralbjl/directory/pkg/models"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// writeError maps domain error kinds to HTTP status codes. Unrecognized errors
// are reported as a generic retryable failure; the specific kind is only
// flattened here, at the presentation boundary.
func writeError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, errorResponse{Error: "validation failed", Fields: ve.Fields}, http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidStatus):
		writeJSON(w, errorResponse{Error: "invalid status"}, http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials):
		writeJSON(w, errorResponse{Error: "invalid credentials"}, http.StatusUnauthorized)
	case errors.Is(err, models.ErrUnauthenticated):
		writeJSON(w, errorResponse{Error: "authentication required"}, http.StatusUnauthorized)
	case errors.Is(err, models.ErrConfirmationRequired):
		writeJSON(w, errorResponse{Error: "confirmation required"}, http.StatusForbidden)
	case errors.Is(err, models.ErrForbidden):
		writeJSON(w, errorResponse{Error: "permission denied"}, http.StatusForbidden)
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, errorResponse{Error: "not found"}, http.StatusNotFound)
	case errors.Is(err, models.ErrDuplicate):
		writeJSON(w, errorResponse{Error: "already exists"}, http.StatusConflict)
	default:
		logger.Error("internal error", slog.Any("err", err))
		writeJSON(w, errorResponse{Error: "unexpected error, try again"}, http.StatusInternalServerError)
	}
}
