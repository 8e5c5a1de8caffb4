package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/infrastructure/metrics"
)

// InvoiceUseCase handles invoice business logic.
type InvoiceUseCase struct {
	invoiceRepo InvoiceRepository
	companyUC   *CompanyUseCase
	auditRepo   AuditRepository
	idGen       IDGenerator
}

// NewInvoiceUseCase creates a new InvoiceUseCase.
func NewInvoiceUseCase(invoiceRepo InvoiceRepository, companyUC *CompanyUseCase, auditRepo AuditRepository, idGen IDGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		companyUC:   companyUC,
		auditRepo:   auditRepo,
		idGen:       idGen,
	}
}

// CreateInvoiceInput represents input for billing a guide.
type CreateInvoiceInput struct {
	ClientID      string
	ClientName    string
	ControlNumber string
	Guide         domain.ShippingGuide
	UserID        string
}

// CreateInvoice bills a shipping guide: validates it, computes its financial
// breakdown against the current company configuration, and stores the invoice
// with the total cached for list views.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if err := input.Guide.Validate(); err != nil {
		return nil, err
	}

	company, err := uc.companyUC.Get(ctx)
	if err != nil {
		return nil, err
	}

	number, err := uc.invoiceRepo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	fin := domain.CalculateFinancials(&input.Guide, company)
	now := time.Now().UTC()

	invoice := &domain.Invoice{
		ID:             uc.idGen.Generate(),
		InvoiceNumber:  number,
		ControlNumber:  input.ControlNumber,
		ClientID:       input.ClientID,
		ClientName:     input.ClientName,
		Guide:          input.Guide,
		Status:         domain.MasterStatusActiva,
		PaymentStatus:  domain.PaymentStatusPendiente,
		ShippingStatus: domain.ShippingStatusPendiente,
		TotalAmount:    fin.Total,
		Date:           input.Guide.Date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if invoice.Date.IsZero() {
		invoice.Date = now
	}

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	metrics.InvoicesCreated.Inc()
	uc.audit(ctx, input.UserID, domain.AuditActionInvoiceCreate, invoice.ID,
		"Creó la factura "+invoice.InvoiceNumber)

	return invoice, nil
}

// UpdateInvoiceInput carries an edited guide for an existing invoice.
type UpdateInvoiceInput struct {
	ID         string
	ClientID   string
	ClientName string
	Guide      domain.ShippingGuide
	UserID     string
}

// UpdateInvoice replaces the guide of a live invoice and recomputes the
// cached total. Voided invoices are frozen.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, input UpdateInvoiceInput) (*domain.Invoice, error) {
	if err := input.Guide.Validate(); err != nil {
		return nil, err
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice.IsVoided() {
		return nil, domain.ErrInvoiceVoided
	}

	company, err := uc.companyUC.Get(ctx)
	if err != nil {
		return nil, err
	}

	invoice.ClientID = input.ClientID
	invoice.ClientName = input.ClientName
	invoice.Guide = input.Guide
	invoice.TotalAmount = domain.CalculateFinancials(&input.Guide, company).Total
	invoice.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	uc.audit(ctx, input.UserID, domain.AuditActionInvoiceUpdate, invoice.ID,
		"Actualizó la factura "+invoice.InvoiceNumber)

	return invoice, nil
}

// UpdateStatusesInput carries partial status transitions; nil fields are left
// untouched.
type UpdateStatusesInput struct {
	ID             string
	Status         *domain.MasterStatus
	PaymentStatus  *domain.PaymentStatus
	ShippingStatus *domain.ShippingStatus
	UserID         string
}

// UpdateStatuses applies status transitions: payment collected, cargo moved,
// or the invoice voided. Voiding removes the invoice from every ledger
// projection from then on.
func (uc *InvoiceUseCase) UpdateStatuses(ctx context.Context, input UpdateStatusesInput) (*domain.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	action := domain.AuditActionInvoiceStatus
	if input.Status != nil {
		invoice.Status = *input.Status
		if *input.Status == domain.MasterStatusAnulada {
			action = domain.AuditActionInvoiceVoid
		}
	}
	if input.PaymentStatus != nil {
		invoice.PaymentStatus = *input.PaymentStatus
	}
	if input.ShippingStatus != nil {
		invoice.ShippingStatus = *input.ShippingStatus
	}
	invoice.UpdatedAt = time.Now().UTC()

	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if action == domain.AuditActionInvoiceVoid {
		metrics.InvoicesVoided.Inc()
	}
	uc.audit(ctx, input.UserID, action, invoice.ID,
		"Cambió estado de factura "+invoice.InvoiceNumber)

	return invoice, nil
}

// GetInvoice retrieves an invoice by ID.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return uc.invoiceRepo.GetByID(ctx, id)
}

// ListInvoicesInput represents input for listing invoices.
type ListInvoicesInput struct {
	Limit  int
	Offset int
}

// ListInvoices lists invoices with pagination.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, input ListInvoicesInput) ([]*domain.Invoice, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultPageSize
	}
	if input.Limit > MaxPageSize {
		input.Limit = MaxPageSize
	}
	return uc.invoiceRepo.List(ctx, input.Limit, input.Offset)
}

// Financials recomputes the charge breakdown of a stored invoice against the
// current company configuration. Used by the printable-document flow.
func (uc *InvoiceUseCase) Financials(ctx context.Context, id string) (domain.Financials, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return domain.ZeroFinancials(), err
	}
	company, err := uc.companyUC.Get(ctx)
	if err != nil {
		return domain.ZeroFinancials(), err
	}
	return domain.CalculateFinancials(&invoice.Guide, company), nil
}

func (uc *InvoiceUseCase) audit(ctx context.Context, userID string, action domain.AuditAction, resourceID, details string) {
	if uc.auditRepo == nil {
		return
	}
	// Audit failures must not fail the business operation.
	_ = uc.auditRepo.Create(ctx, &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		Action:       string(action),
		ResourceType: "invoice",
		ResourceID:   resourceID,
		Details:      details,
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	})
}
