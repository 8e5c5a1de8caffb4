package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// CuentaService defines the behavior needed by CuentaHandler.
type CuentaService interface {
	CreateCuenta(ctx context.Context, input usecase.CreateCuentaInput) (*domain.CuentaContable, error)
	UpdateCuenta(ctx context.Context, input usecase.UpdateCuentaInput) (*domain.CuentaContable, error)
	DeleteCuenta(ctx context.Context, id string) error
	GetCuenta(ctx context.Context, id string) (*domain.CuentaContable, error)
	ListCuentas(ctx context.Context) ([]*domain.CuentaContable, error)
}

// CuentaHandler handles chart-of-accounts HTTP requests.
type CuentaHandler struct {
	cuentaUC CuentaService
}

// NewCuentaHandler creates a new CuentaHandler.
func NewCuentaHandler(cuentaUC CuentaService) *CuentaHandler {
	return &CuentaHandler{cuentaUC: cuentaUC}
}

// Create adds an account to the chart.
func (h *CuentaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CuentaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	cuenta, err := h.cuentaUC.CreateCuenta(r.Context(), usecase.CreateCuentaInput{
		Codigo: req.Codigo,
		Nombre: req.Nombre,
		Tipo:   domain.CuentaType(req.Tipo),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CuentaFromDomain(cuenta))
}

// Get retrieves an account by ID.
func (h *CuentaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cuenta, err := h.cuentaUC.GetCuenta(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CuentaFromDomain(cuenta))
}

// List lists the chart of accounts.
func (h *CuentaHandler) List(w http.ResponseWriter, r *http.Request) {
	cuentas, err := h.cuentaUC.ListCuentas(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CuentasFromDomain(cuentas))
}

// Update edits an account's display attributes.
func (h *CuentaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.CuentaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	cuenta, err := h.cuentaUC.UpdateCuenta(r.Context(), usecase.UpdateCuentaInput{
		ID:     id,
		Codigo: req.Codigo,
		Nombre: req.Nombre,
		Tipo:   domain.CuentaType(req.Tipo),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CuentaFromDomain(cuenta))
}

// Delete removes an account from the chart.
func (h *CuentaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.cuentaUC.DeleteCuenta(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete account", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
