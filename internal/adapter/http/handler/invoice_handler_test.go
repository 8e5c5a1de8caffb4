package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/adapter/http/dto"
	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

type invoiceServiceStub struct {
	createFn       func(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error)
	updateFn       func(ctx context.Context, input usecase.UpdateInvoiceInput) (*domain.Invoice, error)
	updateStatusFn func(ctx context.Context, input usecase.UpdateStatusesInput) (*domain.Invoice, error)
	getFn          func(ctx context.Context, id string) (*domain.Invoice, error)
	listFn         func(ctx context.Context, input usecase.ListInvoicesInput) ([]*domain.Invoice, error)
	financialsFn   func(ctx context.Context, id string) (domain.Financials, error)
}

func (s *invoiceServiceStub) CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error) {
	return s.createFn(ctx, input)
}

func (s *invoiceServiceStub) UpdateInvoice(ctx context.Context, input usecase.UpdateInvoiceInput) (*domain.Invoice, error) {
	return s.updateFn(ctx, input)
}

func (s *invoiceServiceStub) UpdateStatuses(ctx context.Context, input usecase.UpdateStatusesInput) (*domain.Invoice, error) {
	return s.updateStatusFn(ctx, input)
}

func (s *invoiceServiceStub) GetInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.getFn(ctx, id)
}

func (s *invoiceServiceStub) ListInvoices(ctx context.Context, input usecase.ListInvoicesInput) ([]*domain.Invoice, error) {
	return s.listFn(ctx, input)
}

func (s *invoiceServiceStub) Financials(ctx context.Context, id string) (domain.Financials, error) {
	return s.financialsFn(ctx, id)
}

type companyReaderStub struct {
	getFn func(ctx context.Context) (domain.CompanyInfo, error)
}

func (s *companyReaderStub) Get(ctx context.Context) (domain.CompanyInfo, error) {
	return s.getFn(ctx)
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	invoice := &domain.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "00001",
		ClientName:    "Comercial Páez",
		Status:        domain.MasterStatusActiva,
		TotalAmount:   decimal.RequireFromString("20.6"),
	}

	var captured usecase.CreateInvoiceInput
	handler := NewInvoiceHandler(&invoiceServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error) {
			captured = input
			return invoice, nil
		},
	}, &companyReaderStub{})

	body, _ := json.Marshal(map[string]any{
		"client_id":   "cli-1",
		"client_name": "Comercial Páez",
		"guide": map[string]any{
			"payment_method_id": "pm-1",
			"payment_currency":  "VES",
			"merchandise": []map[string]any{
				{"description": "Caja", "quantity": 1, "weight": 5},
			},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	req.Header.Set("X-User-Id", "operator-1")
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.ClientID != "cli-1" || captured.UserID != "operator-1" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}
	if len(captured.Guide.Merchandise) != 1 || !captured.Guide.Merchandise[0].Weight.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("expected guide merchandise to be decoded, got %+v", captured.Guide.Merchandise)
	}

	var resp dto.InvoiceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "inv-1" || resp.InvoiceNumber != "00001" {
		t.Fatalf("expected invoice inv-1/00001, got %s/%s", resp.ID, resp.InvoiceNumber)
	}
}

func TestInvoiceHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error) {
			t.Fatal("CreateInvoice should not be called for invalid payload")
			return nil, nil
		},
	}, &companyReaderStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInvoiceHandler_Create_EmptyMerchandise(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error) {
			return nil, domain.ErrEmptyMerchandise
		},
	}, &companyReaderStub{})

	body, _ := json.Marshal(dto.CreateInvoiceRequest{ClientID: "cli-1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInvoiceHandler_UpdateStatus_Voided(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		updateStatusFn: func(ctx context.Context, input usecase.UpdateStatusesInput) (*domain.Invoice, error) {
			return nil, domain.ErrInvoiceVoided
		},
	}, &companyReaderStub{})

	body := bytes.NewBufferString(`{"payment_status":"Pagada"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/invoices/inv-1/status", body)
	rec := httptest.NewRecorder()

	handler.UpdateStatus(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestInvoiceHandler_Financials_IncludesUSD(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		financialsFn: func(ctx context.Context, id string) (domain.Financials, error) {
			return domain.Financials{Total: decimal.RequireFromString("73")}, nil
		},
	}, &companyReaderStub{
		getFn: func(ctx context.Context) (domain.CompanyInfo, error) {
			return domain.CompanyInfo{BCVRate: decimal.RequireFromString("36.5")}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/inv-1/financials", nil)
	rec := httptest.NewRecorder()

	handler.Financials(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.FinancialsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.TotalUSD.String() != "2" {
		t.Fatalf("expected 73 VES at 36.5 to be 2 USD, got %s", resp.TotalUSD)
	}
}

func TestInvoiceHandler_Get_NotFound(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Invoice, error) {
			return nil, domain.ErrInvoiceNotFound
		},
	}, &companyReaderStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/missing", nil)
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
