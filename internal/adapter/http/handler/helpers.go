package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/ledger"
)

// userIDHeader carries the acting back-office user for the audit trail.
const userIDHeader = "X-User-Id"

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrExpenseNotFound),
		errors.Is(err, domain.ErrAsientoNotFound),
		errors.Is(err, domain.ErrCuentaNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrSupplierNotFound),
		errors.Is(err, domain.ErrVehicleNotFound),
		errors.Is(err, domain.ErrOfficeNotFound),
		errors.Is(err, domain.ErrAsociadoNotFound),
		errors.Is(err, domain.ErrPagoAsociadoNotFound),
		errors.Is(err, domain.ErrRemesaNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvoiceVoided),
		errors.Is(err, domain.ErrVehicleNotIdle),
		errors.Is(err, domain.ErrNothingToDispatch):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyMerchandise),
		errors.Is(err, domain.ErrInvalidItem),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAsientoUnbalanced),
		errors.Is(err, domain.ErrAsientoTooFewLines),
		errors.Is(err, domain.ErrAsientoMissingCuenta):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDateQuery parses an RFC 3339 or YYYY-MM-DD query parameter. Missing or
// malformed values come back nil, leaving the bound open.
func parseDateQuery(r *http.Request, key string) *time.Time {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", val); err == nil {
		return &t
	}
	return nil
}

// ledgerFilter assembles the projection filter from start, end, and type
// query parameters.
func ledgerFilter(r *http.Request) ledger.Filter {
	f := ledger.Filter{
		Start: parseDateQuery(r, "start"),
		End:   parseDateQuery(r, "end"),
		Type:  ledger.FilterTodos,
	}
	switch r.URL.Query().Get("type") {
	case string(ledger.FilterIngresos):
		f.Type = ledger.FilterIngresos
	case string(ledger.FilterGastos):
		f.Type = ledger.FilterGastos
	}
	return f
}

// requestUserID extracts the acting user for audit entries.
func requestUserID(r *http.Request) string {
	return r.Header.Get(userIDHeader)
}
