package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
)

type dispatchServiceStub struct {
	assignFn       func(ctx context.Context, invoiceID, vehicleID, userID string) (*domain.Invoice, error)
	unassignFn     func(ctx context.Context, invoiceID, userID string) (*domain.Invoice, error)
	dispatchFn     func(ctx context.Context, vehicleID, userID string) (*domain.Remesa, error)
	finalizeFn     func(ctx context.Context, vehicleID, userID string) error
	deleteRemesaFn func(ctx context.Context, remesaID, userID string) error
	listRemesasFn  func(ctx context.Context, limit, offset int) ([]*domain.Remesa, error)
	getRemesaFn    func(ctx context.Context, id string) (*domain.Remesa, error)
}

func (s *dispatchServiceStub) AssignInvoice(ctx context.Context, invoiceID, vehicleID, userID string) (*domain.Invoice, error) {
	return s.assignFn(ctx, invoiceID, vehicleID, userID)
}

func (s *dispatchServiceStub) UnassignInvoice(ctx context.Context, invoiceID, userID string) (*domain.Invoice, error) {
	return s.unassignFn(ctx, invoiceID, userID)
}

func (s *dispatchServiceStub) Dispatch(ctx context.Context, vehicleID, userID string) (*domain.Remesa, error) {
	return s.dispatchFn(ctx, vehicleID, userID)
}

func (s *dispatchServiceStub) FinalizeTrip(ctx context.Context, vehicleID, userID string) error {
	return s.finalizeFn(ctx, vehicleID, userID)
}

func (s *dispatchServiceStub) DeleteRemesa(ctx context.Context, remesaID, userID string) error {
	return s.deleteRemesaFn(ctx, remesaID, userID)
}

func (s *dispatchServiceStub) ListRemesas(ctx context.Context, limit, offset int) ([]*domain.Remesa, error) {
	return s.listRemesasFn(ctx, limit, offset)
}

func (s *dispatchServiceStub) GetRemesa(ctx context.Context, id string) (*domain.Remesa, error) {
	return s.getRemesaFn(ctx, id)
}

func TestDispatchHandler_Assign_Success(t *testing.T) {
	var gotInvoice, gotVehicle string
	handler := NewDispatchHandler(&dispatchServiceStub{
		assignFn: func(ctx context.Context, invoiceID, vehicleID, userID string) (*domain.Invoice, error) {
			gotInvoice, gotVehicle = invoiceID, vehicleID
			return &domain.Invoice{ID: invoiceID, VehicleID: vehicleID, ShippingStatus: domain.ShippingStatusAsignada}, nil
		},
	})

	body := bytes.NewBufferString(`{"vehicle_id":"veh-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/inv-1/assign", body)
	req = setChiURLParam(req, "id", "inv-1")
	rec := httptest.NewRecorder()

	handler.Assign(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotInvoice != "inv-1" || gotVehicle != "veh-1" {
		t.Fatalf("expected inv-1/veh-1, got %s/%s", gotInvoice, gotVehicle)
	}

	var resp dto.InvoiceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ShippingStatus != string(domain.ShippingStatusAsignada) {
		t.Fatalf("expected shipping status Asignada, got %s", resp.ShippingStatus)
	}
}

func TestDispatchHandler_Dispatch_Success(t *testing.T) {
	handler := NewDispatchHandler(&dispatchServiceStub{
		dispatchFn: func(ctx context.Context, vehicleID, userID string) (*domain.Remesa, error) {
			return &domain.Remesa{
				ID:           "rem-1",
				RemesaNumber: "R-00001",
				VehicleID:    vehicleID,
				InvoiceIDs:   []string{"inv-1", "inv-2"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/veh-1/dispatch", nil)
	req = setChiURLParam(req, "id", "veh-1")
	rec := httptest.NewRecorder()

	handler.Dispatch(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.RemesaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RemesaNumber != "R-00001" || len(resp.InvoiceIDs) != 2 {
		t.Fatalf("expected remesa R-00001 with 2 invoices, got %+v", resp)
	}
}

func TestDispatchHandler_Dispatch_EmptyLoad(t *testing.T) {
	handler := NewDispatchHandler(&dispatchServiceStub{
		dispatchFn: func(ctx context.Context, vehicleID, userID string) (*domain.Remesa, error) {
			return nil, domain.ErrNothingToDispatch
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/veh-1/dispatch", nil)
	req = setChiURLParam(req, "id", "veh-1")
	rec := httptest.NewRecorder()

	handler.Dispatch(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestDispatchHandler_FinalizeTrip_NotOnRoute(t *testing.T) {
	handler := NewDispatchHandler(&dispatchServiceStub{
		finalizeFn: func(ctx context.Context, vehicleID, userID string) error {
			return domain.ErrVehicleNotIdle
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/veh-1/finalize-trip", nil)
	req = setChiURLParam(req, "id", "veh-1")
	rec := httptest.NewRecorder()

	handler.FinalizeTrip(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
