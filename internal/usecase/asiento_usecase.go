package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/infrastructure/metrics"
)

// AsientoUseCase handles manual journal entry business logic.
type AsientoUseCase struct {
	asientoRepo AsientoRepository
	cuentaRepo  CuentaRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
}

// NewAsientoUseCase creates a new AsientoUseCase.
func NewAsientoUseCase(asientoRepo AsientoRepository, cuentaRepo CuentaRepository, auditRepo AuditRepository, idGen IDGenerator) *AsientoUseCase {
	return &AsientoUseCase{
		asientoRepo: asientoRepo,
		cuentaRepo:  cuentaRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
	}
}

// CreateAsientoInput represents input for recording a manual journal entry.
type CreateAsientoInput struct {
	Asiento domain.AsientoManual
	UserID  string
}

// CreateAsiento records a manual journal entry after enforcing the
// double-entry invariants and checking every referenced account exists.
func (uc *AsientoUseCase) CreateAsiento(ctx context.Context, input CreateAsientoInput) (*domain.AsientoManual, error) {
	asiento := input.Asiento
	if err := asiento.Validate(); err != nil {
		return nil, err
	}

	for _, entry := range asiento.Entries {
		if _, err := uc.cuentaRepo.GetByID(ctx, entry.CuentaID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	asiento.ID = uc.idGen.Generate()
	if asiento.Fecha.IsZero() {
		asiento.Fecha = now
	}
	asiento.CreatedAt = now

	if err := uc.asientoRepo.Create(ctx, &asiento); err != nil {
		return nil, err
	}

	metrics.AsientosRecorded.Inc()
	uc.audit(ctx, input.UserID, domain.AuditActionAsientoCreate, asiento.ID,
		"Registró asiento manual: "+asiento.Descripcion)

	return &asiento, nil
}

// DeleteAsiento removes a manual journal entry.
func (uc *AsientoUseCase) DeleteAsiento(ctx context.Context, id, userID string) error {
	asiento, err := uc.asientoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.asientoRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit(ctx, userID, domain.AuditActionAsientoDelete, id,
		"Eliminó asiento manual: "+asiento.Descripcion)

	return nil
}

// GetAsiento retrieves a manual journal entry by ID.
func (uc *AsientoUseCase) GetAsiento(ctx context.Context, id string) (*domain.AsientoManual, error) {
	return uc.asientoRepo.GetByID(ctx, id)
}

// ListAsientos lists manual journal entries in an optional date range.
func (uc *AsientoUseCase) ListAsientos(ctx context.Context, start, end *time.Time) ([]*domain.AsientoManual, error) {
	return uc.asientoRepo.ListByDateRange(ctx, start, end)
}

func (uc *AsientoUseCase) audit(ctx context.Context, userID string, action domain.AuditAction, resourceID, details string) {
	if uc.auditRepo == nil {
		return
	}
	_ = uc.auditRepo.Create(ctx, &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		Action:       string(action),
		ResourceType: "asiento",
		ResourceID:   resourceID,
		Details:      details,
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	})
}
