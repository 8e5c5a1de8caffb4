package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
)

// DispatchService defines the behavior needed by DispatchHandler.
type DispatchService interface {
	AssignInvoice(ctx context.Context, invoiceID, vehicleID, userID string) (*domain.Invoice, error)
	UnassignInvoice(ctx context.Context, invoiceID, userID string) (*domain.Invoice, error)
	Dispatch(ctx context.Context, vehicleID, userID string) (*domain.Remesa, error)
	FinalizeTrip(ctx context.Context, vehicleID, userID string) error
	DeleteRemesa(ctx context.Context, remesaID, userID string) error
	ListRemesas(ctx context.Context, limit, offset int) ([]*domain.Remesa, error)
	GetRemesa(ctx context.Context, id string) (*domain.Remesa, error)
}

// DispatchHandler handles vehicle loading and dispatch HTTP requests.
type DispatchHandler struct {
	dispatchUC DispatchService
}

// NewDispatchHandler creates a new DispatchHandler.
func NewDispatchHandler(dispatchUC DispatchService) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// Assign loads an invoice onto a vehicle.
func (h *DispatchHandler) Assign(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")

	var req dto.AssignInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.dispatchUC.AssignInvoice(r.Context(), invoiceID, req.VehicleID, requestUserID(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to assign invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// Unassign takes an invoice back off its vehicle.
func (h *DispatchHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	invoiceID := chi.URLParam(r, "id")

	invoice, err := h.dispatchUC.UnassignInvoice(r.Context(), invoiceID, requestUserID(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to unassign invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// Dispatch sends a loaded vehicle on route and returns its dispatch note.
func (h *DispatchHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")

	remesa, err := h.dispatchUC.Dispatch(r.Context(), vehicleID, requestUserID(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to dispatch vehicle", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RemesaFromDomain(remesa))
}

// FinalizeTrip marks a routed vehicle's cargo delivered and frees it.
func (h *DispatchHandler) FinalizeTrip(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")

	if err := h.dispatchUC.FinalizeTrip(r.Context(), vehicleID, requestUserID(r)); err != nil {
		writeError(w, mapDomainError(err), "failed to finalize trip", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetRemesa retrieves a dispatch note by ID.
func (h *DispatchHandler) GetRemesa(w http.ResponseWriter, r *http.Request) {
	remesa, err := h.dispatchUC.GetRemesa(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get dispatch note", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RemesaFromDomain(remesa))
}

// ListRemesas lists dispatch notes.
func (h *DispatchHandler) ListRemesas(w http.ResponseWriter, r *http.Request) {
	remesas, err := h.dispatchUC.ListRemesas(r.Context(),
		parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list dispatch notes", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RemesasFromDomain(remesas))
}

// DeleteRemesa reverts a dispatch, putting its invoices back on the vehicle.
func (h *DispatchHandler) DeleteRemesa(w http.ResponseWriter, r *http.Request) {
	if err := h.dispatchUC.DeleteRemesa(r.Context(), chi.URLParam(r, "id"), requestUserID(r)); err != nil {
		writeError(w, mapDomainError(err), "failed to delete dispatch note", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
