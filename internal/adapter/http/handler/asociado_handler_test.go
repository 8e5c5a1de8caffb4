package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

type asociadoServiceStub struct {
	createFn       func(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error)
	updateFn       func(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error)
	deleteFn       func(ctx context.Context, id string) error
	getFn          func(ctx context.Context, id string) (*domain.Asociado, error)
	listFn         func(ctx context.Context, limit, offset int) ([]*domain.Asociado, error)
	createPagoFn   func(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error)
	updatePagoFn   func(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error)
	markPagoPaidFn func(ctx context.Context, id, userID string) (*domain.PagoAsociado, error)
	deletePagoFn   func(ctx context.Context, id, userID string) error
	listPagosFn    func(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error)
}

func (s *asociadoServiceStub) CreateAsociado(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error) {
	return s.createFn(ctx, asociado)
}

func (s *asociadoServiceStub) UpdateAsociado(ctx context.Context, asociado domain.Asociado) (*domain.Asociado, error) {
	return s.updateFn(ctx, asociado)
}

func (s *asociadoServiceStub) DeleteAsociado(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *asociadoServiceStub) GetAsociado(ctx context.Context, id string) (*domain.Asociado, error) {
	return s.getFn(ctx, id)
}

func (s *asociadoServiceStub) ListAsociados(ctx context.Context, limit, offset int) ([]*domain.Asociado, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *asociadoServiceStub) CreatePago(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error) {
	return s.createPagoFn(ctx, input)
}

func (s *asociadoServiceStub) UpdatePago(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error) {
	return s.updatePagoFn(ctx, input)
}

func (s *asociadoServiceStub) MarkPagoPaid(ctx context.Context, id, userID string) (*domain.PagoAsociado, error) {
	return s.markPagoPaidFn(ctx, id, userID)
}

func (s *asociadoServiceStub) DeletePago(ctx context.Context, id, userID string) error {
	return s.deletePagoFn(ctx, id, userID)
}

func (s *asociadoServiceStub) ListPagos(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error) {
	return s.listPagosFn(ctx, asociadoID)
}

func TestAsociadoHandler_CreatePago_Success(t *testing.T) {
	var gotInput usecase.CreatePagoInput
	handler := NewAsociadoHandler(&asociadoServiceStub{
		createPagoFn: func(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error) {
			gotInput = input
			pago := input.Pago
			pago.ID = "pago-1"
			pago.MontoUsd = decimal.NewFromInt(50)
			pago.Status = domain.PagoAsociadoPendiente
			return &pago, nil
		},
	})

	body := bytes.NewBufferString(`{"concepto":"Certificado 2026","cuotas":"4","monto_bs":2000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/asociados/aso-1/pagos", body)
	req.Header.Set("X-User-Id", "operator-1")
	req = setChiURLParam(req, "id", "aso-1")
	rec := httptest.NewRecorder()

	handler.CreatePago(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotInput.Pago.AsociadoID != "aso-1" {
		t.Fatalf("expected asociado ID from the URL, got %s", gotInput.Pago.AsociadoID)
	}
	if gotInput.UserID != "operator-1" {
		t.Fatalf("expected operator from the user header, got %s", gotInput.UserID)
	}

	var resp dto.PagoAsociadoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.PagoAsociadoPendiente) {
		t.Fatalf("expected status Pendiente, got %s", resp.Status)
	}
	if !resp.MontoUsd.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected derived USD amount 50, got %s", resp.MontoUsd)
	}
}

func TestAsociadoHandler_CreatePago_UnknownAsociado(t *testing.T) {
	handler := NewAsociadoHandler(&asociadoServiceStub{
		createPagoFn: func(ctx context.Context, input usecase.CreatePagoInput) (*domain.PagoAsociado, error) {
			return nil, domain.ErrAsociadoNotFound
		},
	})

	body := bytes.NewBufferString(`{"concepto":"Cuota","monto_bs":100}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/asociados/missing/pagos", body)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.CreatePago(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAsociadoHandler_PayPago_Success(t *testing.T) {
	handler := NewAsociadoHandler(&asociadoServiceStub{
		markPagoPaidFn: func(ctx context.Context, id, userID string) (*domain.PagoAsociado, error) {
			return &domain.PagoAsociado{ID: id, Status: domain.PagoAsociadoPagado}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/asociados/pagos/pago-1/pay", nil)
	req = setChiURLParam(req, "pagoID", "pago-1")
	rec := httptest.NewRecorder()

	handler.PayPago(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PagoAsociadoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.PagoAsociadoPagado) {
		t.Fatalf("expected status Pagado, got %s", resp.Status)
	}
}
