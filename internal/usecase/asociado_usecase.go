package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
)

// AsociadoUseCase handles the cooperative member registry and the charges
// raised against members: certificate quotas, dues, and similar concepts.
type AsociadoUseCase struct {
	asociadoRepo AsociadoRepository
	pagoRepo     PagoAsociadoRepository
	companyUC    *CompanyUseCase
	auditRepo    AuditRepository
	idGen        IDGenerator
}

// NewAsociadoUseCase creates a new AsociadoUseCase.
func NewAsociadoUseCase(
	asociadoRepo AsociadoRepository,
	pagoRepo PagoAsociadoRepository,
	companyUC *CompanyUseCase,
	auditRepo AuditRepository,
	idGen IDGenerator,
) *AsociadoUseCase {
	return &AsociadoUseCase{
		asociadoRepo: asociadoRepo,
		pagoRepo:     pagoRepo,
		companyUC:    companyUC,
		auditRepo:    auditRepo,
		idGen:        idGen,
	}
}

// CreateAsociado registers a new cooperative member.
func (uc *AsociadoUseCase) CreateAsociado(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error) {
	now := time.Now().UTC()
	asociado.ID = uc.idGen.Generate()
	asociado.CreatedAt = now
	asociado.UpdatedAt = now

	if err := uc.asociadoRepo.Create(ctx, &asociado); err != nil {
		return nil, err
	}
	return &asociado, nil
}

// UpdateAsociado edits a member record. Remesas already issued keep the
// asociado reference they were dispatched with.
func (uc *AsociadoUseCase) UpdateAsociado(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error) {
	existing, err := uc.asociadoRepo.GetByID(ctx, asociado.ID)
	if err != nil {
		return nil, err
	}

	asociado.CreatedAt = existing.CreatedAt
	asociado.UpdatedAt = time.Now().UTC()

	if err := uc.asociadoRepo.Update(ctx, &asociado); err != nil {
		return nil, err
	}
	return &asociado, nil
}

// DeleteAsociado removes a member record.
func (uc *AsociadoUseCase) DeleteAsociado(ctx context.Context, id string) error {
	if _, err := uc.asociadoRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.asociadoRepo.Delete(ctx, id)
}

// GetAsociado retrieves a member by ID.
func (uc *AsociadoUseCase) GetAsociado(ctx context.Context, id string) (*domain.Asociado, error) {
	return uc.asociadoRepo.GetByID(ctx, id)
}

// ListAsociados lists members with pagination.
func (uc *AsociadoUseCase) ListAsociados(ctx context.Context, limit, offset int) ([]*domain.Asociado, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return uc.asociadoRepo.List(ctx, limit, offset)
}

// CreatePagoInput carries a new member charge and the operator recording it.
type CreatePagoInput struct {
	Pago   domain.PagoAsociado
	UserID string
}

// CreatePago raises a charge against a member. The Bs amount is mandatory;
// the USD amount is derived from the current BCV rate when not supplied, the
// same conversion the charge form shows the operator.
func (uc *AsociadoUseCase) CreatePago(ctx context.Context, input CreatePagoInput) (*domain.PagoAsociado, error) {
	pago := input.Pago
	if !pago.MontoBs.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := uc.asociadoRepo.GetByID(ctx, pago.AsociadoID); err != nil {
		return nil, err
	}

	if pago.MontoUsd.IsZero() {
		company, err := uc.companyUC.Get(ctx)
		if err != nil {
			return nil, err
		}
		pago.MontoUsd = company.ToUSD(pago.MontoBs)
	}

	now := time.Now().UTC()
	pago.ID = uc.idGen.Generate()
	if pago.Status == "" {
		pago.Status = domain.PagoAsociadoPendiente
	}
	if pago.FechaVencimiento.IsZero() {
		pago.FechaVencimiento = now
	}
	pago.CreatedAt = now
	pago.UpdatedAt = now

	if err := uc.pagoRepo.Create(ctx, &pago); err != nil {
		return nil, err
	}

	uc.audit(ctx, input.UserID, domain.AuditActionPagoAsociadoCreate, pago.ID,
		"Registró concepto \""+pago.Concepto+"\" al asociado "+pago.AsociadoID)

	return &pago, nil
}

// UpdatePago edits a pending charge.
func (uc *AsociadoUseCase) UpdatePago(ctx context.Context, input CreatePagoInput) (*domain.PagoAsociado, error) {
	pago := input.Pago
	if !pago.MontoBs.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	existing, err := uc.pagoRepo.GetByID(ctx, pago.ID)
	if err != nil {
		return nil, err
	}

	pago.AsociadoID = existing.AsociadoID
	pago.CreatedAt = existing.CreatedAt
	pago.UpdatedAt = time.Now().UTC()
	if pago.Status == "" {
		pago.Status = existing.Status
	}

	if err := uc.pagoRepo.Update(ctx, &pago); err != nil {
		return nil, err
	}
	return &pago, nil
}

// MarkPagoPaid settles a member charge.
func (uc *AsociadoUseCase) MarkPagoPaid(ctx context.Context, id, userID string) (*domain.PagoAsociado, error) {
	pago, err := uc.pagoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pago.Status = domain.PagoAsociadoPagado
	pago.UpdatedAt = time.Now().UTC()

	if err := uc.pagoRepo.Update(ctx, pago); err != nil {
		return nil, err
	}

	uc.audit(ctx, userID, domain.AuditActionPagoAsociadoPay, pago.ID,
		"Marcó como pagado el concepto \""+pago.Concepto+"\"")

	return pago, nil
}

// DeletePago removes a member charge.
func (uc *AsociadoUseCase) DeletePago(ctx context.Context, id, userID string) error {
	pago, err := uc.pagoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.pagoRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit(ctx, userID, domain.AuditActionPagoAsociadoDelete, id,
		"Eliminó el concepto \""+pago.Concepto+"\"")

	return nil
}

// ListPagos lists the charges raised against one member.
func (uc *AsociadoUseCase) ListPagos(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error) {
	if _, err := uc.asociadoRepo.GetByID(ctx, asociadoID); err != nil {
		return nil, err
	}
	return uc.pagoRepo.ListByAsociado(ctx, asociadoID)
}

func (uc *AsociadoUseCase) audit(ctx context.Context, userID string, action domain.AuditAction, resourceID, details string) {
	if uc.auditRepo == nil {
		return
	}
	_ = uc.auditRepo.Create(ctx, &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		Action:       string(action),
		ResourceType: "pago_asociado",
		ResourceID:   resourceID,
		Details:      details,
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	})
}
