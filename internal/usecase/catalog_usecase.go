package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
)

// CatalogUseCase handles the registries billing draws from: clients,
// suppliers, vehicles, and offices.
type CatalogUseCase struct {
	clientRepo   ClientRepository
	supplierRepo SupplierRepository
	vehicleRepo  VehicleRepository
	officeRepo   OfficeRepository
	idGen        IDGenerator
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(clientRepo ClientRepository, supplierRepo SupplierRepository, vehicleRepo VehicleRepository, officeRepo OfficeRepository, idGen IDGenerator) *CatalogUseCase {
	return &CatalogUseCase{
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
		vehicleRepo:  vehicleRepo,
		officeRepo:   officeRepo,
		idGen:        idGen,
	}
}

// CreateClient registers a new client.
func (uc *CatalogUseCase) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	now := time.Now().UTC()
	client.ID = uc.idGen.Generate()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := uc.clientRepo.Create(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// UpdateClient edits a client record. Guides already billed keep their
// sender/receiver snapshots.
func (uc *CatalogUseCase) UpdateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	existing, err := uc.clientRepo.GetByID(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// DeleteClient removes a client record.
func (uc *CatalogUseCase) DeleteClient(ctx context.Context, id string) error {
	if _, err := uc.clientRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.clientRepo.Delete(ctx, id)
}

// GetClient retrieves a client by ID.
func (uc *CatalogUseCase) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return uc.clientRepo.GetByID(ctx, id)
}

// ListClients lists clients with pagination.
func (uc *CatalogUseCase) ListClients(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return uc.clientRepo.List(ctx, limit, offset)
}

// CreateSupplier registers a new supplier.
func (uc *CatalogUseCase) CreateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	now := time.Now().UTC()
	supplier.ID = uc.idGen.Generate()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	if err := uc.supplierRepo.Create(ctx, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// UpdateSupplier edits a supplier record.
func (uc *CatalogUseCase) UpdateSupplier(ctx context.Context, supplier domain.Supplier) (*domain.Supplier, error) {
	existing, err := uc.supplierRepo.GetByID(ctx, supplier.ID)
	if err != nil {
		return nil, err
	}

	supplier.CreatedAt = existing.CreatedAt
	supplier.UpdatedAt = time.Now().UTC()

	if err := uc.supplierRepo.Update(ctx, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// DeleteSupplier removes a supplier record.
func (uc *CatalogUseCase) DeleteSupplier(ctx context.Context, id string) error {
	if _, err := uc.supplierRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.supplierRepo.Delete(ctx, id)
}

// GetSupplier retrieves a supplier by ID.
func (uc *CatalogUseCase) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	return uc.supplierRepo.GetByID(ctx, id)
}

// ListSuppliers lists suppliers with pagination.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context, limit, offset int) ([]*domain.Supplier, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return uc.supplierRepo.List(ctx, limit, offset)
}

// CreateVehicle registers a new vehicle in Disponible state.
func (uc *CatalogUseCase) CreateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	now := time.Now().UTC()
	vehicle.ID = uc.idGen.Generate()
	vehicle.Status = domain.VehicleStatusDisponible
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now

	if err := uc.vehicleRepo.Create(ctx, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// UpdateVehicle edits a vehicle record without touching its dispatch state.
func (uc *CatalogUseCase) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) (*domain.Vehicle, error) {
	existing, err := uc.vehicleRepo.GetByID(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}

	vehicle.Status = existing.Status
	vehicle.CreatedAt = existing.CreatedAt
	vehicle.UpdatedAt = time.Now().UTC()

	if err := uc.vehicleRepo.Update(ctx, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// GetVehicle retrieves a vehicle by ID.
func (uc *CatalogUseCase) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return uc.vehicleRepo.GetByID(ctx, id)
}

// ListVehicles returns the vehicle fleet.
func (uc *CatalogUseCase) ListVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	return uc.vehicleRepo.List(ctx)
}

// GetOffice retrieves a branch office by ID.
func (uc *CatalogUseCase) GetOffice(ctx context.Context, id string) (*domain.Office, error) {
	return uc.officeRepo.GetByID(ctx, id)
}

// ListOffices returns the seeded branch offices.
func (uc *CatalogUseCase) ListOffices(ctx context.Context) ([]*domain.Office, error) {
	return uc.officeRepo.List(ctx)
}
