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

// AsociadoService defines the behavior needed by AsociadoHandler.
type AsociadoService interface {
	CreateAsociado(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error)
	UpdateAsociado(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error)
	DeleteAsociado(ctx context.Context, id string) error
	GetAsociado(ctx context.Context, id string) (*domain.Asociado, error)
	ListAsociados(ctx context.Context, limit, offset int) ([]*domain.Asociado, error)

	CreatePago(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error)
	UpdatePago(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error)
	MarkPagoPaid(ctx context.Context, id, userID string) (*domain.PagoAsociado, error)
	DeletePago(ctx context.Context, id, userID string) error
	ListPagos(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error)
}

// AsociadoHandler handles cooperative member HTTP requests.
type AsociadoHandler struct {
	asociadoUC AsociadoService
}

// NewAsociadoHandler creates a new AsociadoHandler.
func NewAsociadoHandler(asociadoUC AsociadoService) *AsociadoHandler {
	return &AsociadoHandler{asociadoUC: asociadoUC}
}

// Create registers a member.
func (h *AsociadoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AsociadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asociado, err := h.asociadoUC.CreateAsociado(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create asociado", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AsociadoFromDomain(asociado))
}

// Get retrieves a member by ID.
func (h *AsociadoHandler) Get(w http.ResponseWriter, r *http.Request) {
	asociado, err := h.asociadoUC.GetAsociado(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get asociado", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AsociadoFromDomain(asociado))
}

// List lists members.
func (h *AsociadoHandler) List(w http.ResponseWriter, r *http.Request) {
	asociados, err := h.asociadoUC.ListAsociados(r.Context(),
		parseIntQuery(r, "limit", usecase.DefaultPageSize), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list asociados", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AsociadosFromDomain(asociados))
}

// Update edits a member record.
func (h *AsociadoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.AsociadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asociado := req.ToDomain()
	asociado.ID = chi.URLParam(r, "id")

	updated, err := h.asociadoUC.UpdateAsociado(r.Context(), asociado)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update asociado", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AsociadoFromDomain(updated))
}

// Delete removes a member.
func (h *AsociadoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.asociadoUC.DeleteAsociado(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete asociado", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreatePago raises a charge against a member.
func (h *AsociadoHandler) CreatePago(w http.ResponseWriter, r *http.Request) {
	var req dto.PagoAsociadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	pago := req.ToDomain()
	pago.AsociadoID = chi.URLParam(r, "id")

	created, err := h.asociadoUC.CreatePago(r.Context(), usecase.CreatePagoInput{
		Pago:   pago,
		UserID: requestUserID(r),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create member charge", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PagoAsociadoFromDomain(created))
}

// ListPagos lists a member's charges.
func (h *AsociadoHandler) ListPagos(w http.ResponseWriter, r *http.Request) {
	pagos, err := h.asociadoUC.ListPagos(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list member charges", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PagosAsociadosFromDomain(pagos))
}

// UpdatePago edits a member charge.
func (h *AsociadoHandler) UpdatePago(w http.ResponseWriter, r *http.Request) {
	var req dto.PagoAsociadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	pago := req.ToDomain()
	pago.ID = chi.URLParam(r, "pagoID")

	updated, err := h.asociadoUC.UpdatePago(r.Context(), usecase.CreatePagoInput{
		Pago:   pago,
		UserID: requestUserID(r),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update member charge", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PagoAsociadoFromDomain(updated))
}

// PayPago settles a member charge.
func (h *AsociadoHandler) PayPago(w http.ResponseWriter, r *http.Request) {
	pago, err := h.asociadoUC.MarkPagoPaid(r.Context(), chi.URLParam(r, "pagoID"), requestUserID(r))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to settle member charge", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PagoAsociadoFromDomain(pago))
}

// DeletePago removes a member charge.
func (h *AsociadoHandler) DeletePago(w http.ResponseWriter, r *http.Request) {
	if err := h.asociadoUC.DeletePago(r.Context(), chi.URLParam(r, "pagoID"), requestUserID(r)); err != nil {
		writeError(w, mapDomainError(err), "failed to delete member charge", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
