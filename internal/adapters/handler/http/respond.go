package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pulsepoll/api/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError maps a domain error to its transport status: validation
// and invalid-state failures are the client's fault (400), a missing
// poll is 404, everything else is a 500 with the message replaced so
// internals do not leak.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidation(err) || errors.Is(err, domain.ErrPollNotActive):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPollNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: domain.ErrInternal.Error()})
	}
}
