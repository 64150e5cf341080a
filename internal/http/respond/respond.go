// Package respond holds the response helpers shared by the API handlers.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/faturamento/internal/auth"
	"github.com/MrJamesThe3rd/faturamento/internal/billing"
	"github.com/MrJamesThe3rd/faturamento/internal/migration"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps domain errors to status codes. Anything unrecognised is
// logged and reported as a 500 without details.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, billing.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, billing.ErrInvalidStatus), errors.Is(err, billing.ErrNegativeValue),
		errors.Is(err, billing.ErrMissingIssueDate), errors.Is(err, migration.ErrInvalidDump),
		errors.Is(err, auth.ErrMissingEmail), errors.Is(err, auth.ErrInvalidRole):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, billing.ErrStatusTransition), errors.Is(err, billing.ErrConflict),
		errors.Is(err, migration.ErrAlreadyMigrated):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, auth.ErrUnknownRepresentative), errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrNoSession):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		slog.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// Scope returns the request's data scope, answering 401 itself when the
// request has no session.
func Scope(w http.ResponseWriter, r *http.Request) (billing.Scope, bool) {
	scope, ok := auth.ScopeFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}

	return scope, ok
}

// Decode reads a JSON body into dst, answering 400 itself on failure.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}
