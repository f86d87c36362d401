package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/pkg/problem"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseIDParam parses a positive integer URL parameter.
func parseIDParam(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("must be a positive integer")
	}
	return uint(id), nil
}

// writeDomainError maps domain sentinel errors onto problem responses.
// fallback describes the operation for the 500 case.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Resource not found").Write(w)
	case errors.Is(err, domain.ErrSubjectGone):
		problem.Gone("Subject not found or deleted").Write(w)
	case errors.Is(err, domain.ErrRecordGone):
		problem.Gone("Sleep record not found or deleted").Write(w)
	case errors.Is(err, domain.ErrConflict):
		problem.Conflict(err.Error()).Write(w)
	case errors.Is(err, domain.ErrFutureDate),
		errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrFormat),
		errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}
