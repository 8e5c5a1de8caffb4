package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// AsientoService defines the behavior needed by AsientoHandler.
type AsientoService interface {
	CreateAsiento(ctx context.Context, input usecase.CreateAsientoInput) (*domain.AsientoManual, error)
	DeleteAsiento(ctx context.Context, id, userID string) error
	GetAsiento(ctx context.Context, id string) (*domain.AsientoManual, error)
	ListAsientos(ctx context.Context, start, end *time.Time) ([]*domain.AsientoManual, error)
}

// AsientoHandler handles manual journal entry HTTP requests.
type AsientoHandler struct {
	asientoUC AsientoService
}

// NewAsientoHandler creates a new AsientoHandler.
func NewAsientoHandler(asientoUC AsientoService) *AsientoHandler {
	return &AsientoHandler{asientoUC: asientoUC}
}

// Create records a manual journal entry.
func (h *AsientoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAsientoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	asiento, err := h.asientoUC.CreateAsiento(r.Context(), req.ToUseCaseInput(requestUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create journal entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.AsientoManualFromDomain(asiento))
}

// Get retrieves a manual journal entry by ID.
func (h *AsientoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	asiento, err := h.asientoUC.GetAsiento(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get journal entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AsientoManualFromDomain(asiento))
}

// List lists manual journal entries within an optional date range.
func (h *AsientoHandler) List(w http.ResponseWriter, r *http.Request) {
	asientos, err := h.asientoUC.ListAsientos(r.Context(),
		parseDateQuery(r, "start"), parseDateQuery(r, "end"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list journal entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AsientosManualesFromDomain(asientos))
}

// Delete removes a manual journal entry.
func (h *AsientoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.asientoUC.DeleteAsiento(r.Context(), id, requestUserID(r)); err != nil {
		writeError(w, mapDomainError(err), "failed to delete journal entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
