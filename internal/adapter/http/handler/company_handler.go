package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
)

// CompanyService defines the behavior needed by CompanyHandler.
type CompanyService interface {
	Get(ctx context.Context) (domain.CompanyInfo, error)
	Update(ctx context.Context, info domain.CompanyInfo) (domain.CompanyInfo, error)
}

// PaymentMethodLister lists the configured payment methods.
type PaymentMethodLister interface {
	List(ctx context.Context) ([]*domain.PaymentMethod, error)
}

// CompanyHandler handles company configuration HTTP requests.
type CompanyHandler struct {
	companyUC CompanyService
	pmRepo    PaymentMethodLister
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyUC CompanyService, pmRepo PaymentMethodLister) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC, pmRepo: pmRepo}
}

// Get returns the company configuration.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.companyUC.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get company configuration", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CompanyFromDomain(info))
}

// Update replaces the company configuration. The new CostPerKg and BCVRate
// apply to every financial computation from this point on.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.CompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	info, err := h.companyUC.Update(r.Context(), req.ToDomain())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update company configuration", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CompanyFromDomain(info))
}

// PaymentMethods lists the configured payment methods.
func (h *CompanyHandler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.pmRepo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list payment methods", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentMethodsFromDomain(methods))
}
