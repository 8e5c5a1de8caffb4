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

// InvoiceService defines the behavior needed by InvoiceHandler.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, input usecase.UpdateInvoiceInput) (*domain.Invoice, error)
	UpdateStatuses(ctx context.Context, input usecase.UpdateStatusesInput) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, input usecase.ListInvoicesInput) ([]*domain.Invoice, error)
	Financials(ctx context.Context, id string) (domain.Financials, error)
}

// CompanyReader provides the configuration snapshot handlers need to render
// USD conversions.
type CompanyReader interface {
	Get(ctx context.Context) (domain.CompanyInfo, error)
}

// InvoiceHandler handles invoice-related HTTP requests.
type InvoiceHandler struct {
	invoiceUC InvoiceService
	companyUC CompanyReader
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceUC InvoiceService, companyUC CompanyReader) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, companyUC: companyUC}
}

// Create bills a shipping guide.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.CreateInvoice(r.Context(), req.ToUseCaseInput(requestUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceFromDomain(invoice))
}

// Get retrieves an invoice by ID.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	invoice, err := h.invoiceUC.GetInvoice(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// List lists invoices.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceUC.ListInvoices(r.Context(), usecase.ListInvoicesInput{
		Limit:  parseIntQuery(r, "limit", usecase.DefaultPageSize),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoicesFromDomain(invoices))
}

// Update replaces the guide of a live invoice.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.UpdateInvoice(r.Context(), req.ToUseCaseInput(id, requestUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// UpdateStatus applies partial status transitions, including voiding.
func (h *InvoiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateInvoiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.UpdateStatuses(r.Context(), req.ToUseCaseInput(id, requestUserID(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update invoice status", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// Financials returns the recomputed charge breakdown of an invoice.
func (h *InvoiceHandler) Financials(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fin, err := h.invoiceUC.Financials(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute financials", err.Error())
		return
	}

	company, err := h.companyUC.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load company configuration", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FinancialsFromDomain(fin, company))
}
