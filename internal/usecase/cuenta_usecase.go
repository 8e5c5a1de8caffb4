package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
)

// CuentaUseCase handles chart-of-accounts business logic.
type CuentaUseCase struct {
	cuentaRepo CuentaRepository
	idGen      IDGenerator
}

// NewCuentaUseCase creates a new CuentaUseCase.
func NewCuentaUseCase(cuentaRepo CuentaRepository, idGen IDGenerator) *CuentaUseCase {
	return &CuentaUseCase{
		cuentaRepo: cuentaRepo,
		idGen:      idGen,
	}
}

// CreateCuentaInput represents input for adding an account to the chart.
type CreateCuentaInput struct {
	Codigo string
	Nombre string
	Tipo   domain.CuentaType
}

// CreateCuenta adds an account to the chart of accounts.
func (uc *CuentaUseCase) CreateCuenta(ctx context.Context, input CreateCuentaInput) (*domain.CuentaContable, error) {
	now := time.Now().UTC()
	cuenta := &domain.CuentaContable{
		ID:        uc.idGen.Generate(),
		Codigo:    input.Codigo,
		Nombre:    input.Nombre,
		Tipo:      input.Tipo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.cuentaRepo.Create(ctx, cuenta); err != nil {
		return nil, err
	}
	return cuenta, nil
}

// UpdateCuentaInput represents input for renaming or reclassifying an account.
type UpdateCuentaInput struct {
	ID     string
	Codigo string
	Nombre string
	Tipo   domain.CuentaType
}

// UpdateCuenta edits an account's display attributes. Ledger history keyed by
// the account ID follows the rename.
func (uc *CuentaUseCase) UpdateCuenta(ctx context.Context, input UpdateCuentaInput) (*domain.CuentaContable, error) {
	cuenta, err := uc.cuentaRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	cuenta.Codigo = input.Codigo
	cuenta.Nombre = input.Nombre
	cuenta.Tipo = input.Tipo
	cuenta.UpdatedAt = time.Now().UTC()

	if err := uc.cuentaRepo.Update(ctx, cuenta); err != nil {
		return nil, err
	}
	return cuenta, nil
}

// DeleteCuenta removes an account from the chart.
func (uc *CuentaUseCase) DeleteCuenta(ctx context.Context, id string) error {
	if _, err := uc.cuentaRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.cuentaRepo.Delete(ctx, id)
}

// GetCuenta retrieves an account by ID.
func (uc *CuentaUseCase) GetCuenta(ctx context.Context, id string) (*domain.CuentaContable, error) {
	return uc.cuentaRepo.GetByID(ctx, id)
}

// ListCuentas returns the full chart of accounts.
func (uc *CuentaUseCase) ListCuentas(ctx context.Context) ([]*domain.CuentaContable, error) {
	return uc.cuentaRepo.List(ctx)
}
