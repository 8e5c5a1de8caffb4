package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/infrastructure/metrics"
)

// DispatchUseCase runs the loading dock: assigning invoices to vehicles,
// sending loaded vehicles out with a remesa, and closing the trip when the
// cargo is delivered.
type DispatchUseCase struct {
	txManager   TransactionManager
	invoiceRepo InvoiceRepository
	vehicleRepo VehicleRepository
	remesaRepo  RemesaRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewDispatchUseCase creates a new DispatchUseCase.
func NewDispatchUseCase(
	txManager TransactionManager,
	invoiceRepo InvoiceRepository,
	vehicleRepo VehicleRepository,
	remesaRepo RemesaRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
) *DispatchUseCase {
	return &DispatchUseCase{
		txManager:   txManager,
		invoiceRepo: invoiceRepo,
		vehicleRepo: vehicleRepo,
		remesaRepo:  remesaRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
	}
}

// WithRetrier sets the retrier used for the transactional operations and
// returns the use case for chaining.
func (uc *DispatchUseCase) WithRetrier(r Retrier) *DispatchUseCase {
	uc.retrier = r
	return uc
}

func (uc *DispatchUseCase) runTx(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

// AssignInvoice puts a pending invoice on a vehicle that is loading. The
// vehicle moves to Cargando on its first assignment.
func (uc *DispatchUseCase) AssignInvoice(ctx context.Context, invoiceID, vehicleID, userID string) (*domain.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.IsVoided() {
		return nil, domain.ErrInvoiceVoided
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status == domain.VehicleStatusEnRuta {
		return nil, domain.ErrVehicleNotIdle
	}

	now := time.Now().UTC()

	invoice.VehicleID = vehicleID
	invoice.ShippingStatus = domain.ShippingStatusAsignada
	invoice.UpdatedAt = now
	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if vehicle.Status == domain.VehicleStatusDisponible {
		vehicle.Status = domain.VehicleStatusCargando
		vehicle.UpdatedAt = now
		if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
			return nil, err
		}
	}

	return invoice, nil
}

// UnassignInvoice takes an assigned invoice off its vehicle before dispatch.
// The vehicle returns to Disponible when its load empties.
func (uc *DispatchUseCase) UnassignInvoice(ctx context.Context, invoiceID, userID string) (*domain.Invoice, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	vehicleID := invoice.VehicleID
	invoice.VehicleID = ""
	invoice.ShippingStatus = domain.ShippingStatusPendiente
	invoice.UpdatedAt = time.Now().UTC()
	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	if vehicleID != "" {
		remaining, err := uc.invoiceRepo.ListByVehicle(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		if len(remaining) == 0 {
			vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
			if err != nil {
				return nil, err
			}
			if vehicle.Status == domain.VehicleStatusCargando {
				vehicle.Status = domain.VehicleStatusDisponible
				vehicle.UpdatedAt = time.Now().UTC()
				if err := uc.vehicleRepo.Update(ctx, vehicle); err != nil {
					return nil, err
				}
			}
		}
	}

	return invoice, nil
}

// Dispatch sends a loaded vehicle out: one transaction creates the remesa,
// marks every assigned invoice En Tránsito, and moves the vehicle to En Ruta.
func (uc *DispatchUseCase) Dispatch(ctx context.Context, vehicleID, userID string) (*domain.Remesa, error) {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status == domain.VehicleStatusEnRuta {
		return nil, domain.ErrVehicleNotIdle
	}

	invoices, err := uc.invoiceRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, domain.ErrNothingToDispatch
	}

	number, err := uc.remesaRepo.NextRemesaNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	remesa := &domain.Remesa{
		ID:           uc.idGen.Generate(),
		RemesaNumber: number,
		VehicleID:    vehicleID,
		AsociadoID:   vehicle.AsociadoID,
		Date:         now,
		CreatedAt:    now,
	}
	for _, invoice := range invoices {
		remesa.InvoiceIDs = append(remesa.InvoiceIDs, invoice.ID)
	}

	err = uc.runTx(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.remesaRepo.CreateTx(ctx, tx, remesa); err != nil {
			return err
		}

		for _, invoice := range invoices {
			invoice.ShippingStatus = domain.ShippingStatusEnTransito
			invoice.UpdatedAt = now
			if err := uc.invoiceRepo.UpdateTx(ctx, tx, invoice); err != nil {
				return err
			}
		}

		vehicle.Status = domain.VehicleStatusEnRuta
		vehicle.UpdatedAt = now
		if err := uc.vehicleRepo.UpdateTx(ctx, tx, vehicle); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	metrics.VehiclesDispatched.Inc()
	uc.audit(ctx, userID, domain.AuditActionVehicleDispatch, remesa.ID, "remesa",
		"Despachó vehículo "+vehicle.Placa+" con remesa "+remesa.RemesaNumber)

	return remesa, nil
}

// FinalizeTrip closes a trip: invoices on the vehicle become Entregada and
// the vehicle returns to Disponible.
func (uc *DispatchUseCase) FinalizeTrip(ctx context.Context, vehicleID, userID string) error {
	vehicle, err := uc.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return err
	}
	if vehicle.Status != domain.VehicleStatusEnRuta {
		return domain.ErrVehicleNotIdle
	}

	invoices, err := uc.invoiceRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	err = uc.runTx(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		for _, invoice := range invoices {
			invoice.ShippingStatus = domain.ShippingStatusEntregada
			invoice.VehicleID = ""
			invoice.UpdatedAt = now
			if err := uc.invoiceRepo.UpdateTx(ctx, tx, invoice); err != nil {
				return err
			}
		}

		vehicle.Status = domain.VehicleStatusDisponible
		vehicle.UpdatedAt = now
		if err := uc.vehicleRepo.UpdateTx(ctx, tx, vehicle); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return err
	}

	metrics.TripsFinalized.Inc()
	uc.audit(ctx, userID, domain.AuditActionTripFinalize, vehicleID, "vehicle",
		"Finalizó viaje del vehículo "+vehicle.Placa)

	return nil
}

// DeleteRemesa undoes a dispatch: invoices on the remesa return to Pendiente
// para Despacho with their vehicle cleared, and the vehicle goes back to
// Disponible.
func (uc *DispatchUseCase) DeleteRemesa(ctx context.Context, remesaID, userID string) error {
	remesa, err := uc.remesaRepo.GetByID(ctx, remesaID)
	if err != nil {
		return err
	}

	vehicle, err := uc.vehicleRepo.GetByID(ctx, remesa.VehicleID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	wasEnRuta := vehicle.Status == domain.VehicleStatusEnRuta
	err = uc.runTx(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		for _, invoiceID := range remesa.InvoiceIDs {
			invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
			if err != nil {
				return err
			}
			invoice.ShippingStatus = domain.ShippingStatusPendiente
			invoice.VehicleID = ""
			invoice.UpdatedAt = now
			if err := uc.invoiceRepo.UpdateTx(ctx, tx, invoice); err != nil {
				return err
			}
		}

		if wasEnRuta {
			vehicle.Status = domain.VehicleStatusDisponible
			vehicle.UpdatedAt = now
			if err := uc.vehicleRepo.UpdateTx(ctx, tx, vehicle); err != nil {
				return err
			}
		}

		if err := uc.remesaRepo.DeleteTx(ctx, tx, remesaID); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return err
	}

	uc.audit(ctx, userID, domain.AuditActionRemesaDelete, remesaID, "remesa",
		"Eliminó la remesa "+remesa.RemesaNumber)

	return nil
}

// ListRemesas lists dispatch notes with pagination.
func (uc *DispatchUseCase) ListRemesas(ctx context.Context, limit, offset int) ([]*domain.Remesa, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return uc.remesaRepo.List(ctx, limit, offset)
}

// GetRemesa retrieves a dispatch note by ID.
func (uc *DispatchUseCase) GetRemesa(ctx context.Context, id string) (*domain.Remesa, error) {
	return uc.remesaRepo.GetByID(ctx, id)
}

func (uc *DispatchUseCase) audit(ctx context.Context, userID string, action domain.AuditAction, resourceID, resourceType, details string) {
	if uc.auditRepo == nil {
		return
	}
	_ = uc.auditRepo.Create(ctx, &domain.AuditLog{
		ID:           uc.idGen.Generate(),
		UserID:       userID,
		Action:       string(action),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	})
}
