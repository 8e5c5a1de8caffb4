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

// CatalogService defines the behavior needed by CatalogHandler.
type CatalogService interface {
	CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]*domain.Client, error)

	CreateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit, offset int) ([]*domain.Supplier, error)

	CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]*domain.Vehicle, error)

	ListOffices(ctx context.Context) ([]*domain.Office, error)
}

// CatalogHandler handles client, supplier, and vehicle HTTP requests.
type CatalogHandler struct {
	catalogUC CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogUC CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// CreateClient registers a client.
func (h *CatalogHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	client, err := h.catalogUC.CreateClient(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create client", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ClientFromDomain(client))
}

// GetClient retrieves a client by ID.
func (h *CatalogHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.catalogUC.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get client", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClientFromDomain(client))
}

// ListClients lists clients.
func (h *CatalogHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.catalogUC.ListClients(r.Context(),
		parseIntQuery(r, "limit", usecase.DefaultPageSize), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClientsFromDomain(clients))
}

// UpdateClient edits a client record.
func (h *CatalogHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	client := req.ToDomain()
	client.ID = chi.URLParam(r, "id")

	updated, err := h.catalogUC.UpdateClient(r.Context(), client)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update client", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClientFromDomain(updated))
}

// DeleteClient removes a client.
func (h *CatalogHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete client", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateSupplier registers a supplier.
func (h *CatalogHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req dto.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	supplier, err := h.catalogUC.CreateSupplier(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SupplierFromDomain(supplier))
}

// GetSupplier retrieves a supplier by ID.
func (h *CatalogHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	supplier, err := h.catalogUC.GetSupplier(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SupplierFromDomain(supplier))
}

// ListSuppliers lists suppliers.
func (h *CatalogHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.catalogUC.ListSuppliers(r.Context(),
		parseIntQuery(r, "limit", usecase.DefaultPageSize), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list suppliers", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SuppliersFromDomain(suppliers))
}

// UpdateSupplier edits a supplier record.
func (h *CatalogHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	var req dto.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	supplier := req.ToDomain()
	supplier.ID = chi.URLParam(r, "id")

	updated, err := h.catalogUC.UpdateSupplier(r.Context(), supplier)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update supplier", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SupplierFromDomain(updated))
}

// DeleteSupplier removes a supplier.
func (h *CatalogHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogUC.DeleteSupplier(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete supplier", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateVehicle registers a vehicle.
func (h *CatalogHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	vehicle, err := h.catalogUC.CreateVehicle(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create vehicle", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.VehicleFromDomain(vehicle))
}

// GetVehicle retrieves a vehicle by ID.
func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, err := h.catalogUC.GetVehicle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get vehicle", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VehicleFromDomain(vehicle))
}

// ListVehicles lists vehicles.
func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.catalogUC.ListVehicles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list vehicles", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VehiclesFromDomain(vehicles))
}

// ListOffices lists the seeded branch offices.
func (h *CatalogHandler) ListOffices(w http.ResponseWriter, r *http.Request) {
	offices, err := h.catalogUC.ListOffices(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list offices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.OfficesFromDomain(offices))
}

// UpdateVehicle edits a vehicle's descriptive fields.
func (h *CatalogHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	var req dto.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	vehicle := req.ToDomain()
	vehicle.ID = chi.URLParam(r, "id")

	updated, err := h.catalogUC.UpdateVehicle(r.Context(), vehicle)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update vehicle", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.VehicleFromDomain(updated))
}
