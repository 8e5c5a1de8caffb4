package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/coopfletes/backoffice/internal/adapter/http/handler"
	apimiddleware "github.com/coopfletes/backoffice/internal/adapter/http/middleware"
	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
	"github.com/coopfletes/backoffice/internal/usecase/mocks"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"name":"Efectivo Bs"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/invoices/",
		"GET /api/v1/invoices/{id}/financials",
		"POST /api/v1/invoices/{id}/assign",
		"POST /api/v1/expenses/",
		"POST /api/v1/asientos/",
		"POST /api/v1/vehicles/{id}/dispatch",
		"GET /api/v1/ledger/diario",
		"GET /api/v1/ledger/mayor/export",
		"GET /api/v1/audit",
		"GET /api/v1/offices",
		"POST /api/v1/asociados/",
		"GET /api/v1/asociados/{id}/pagos",
		"POST /api/v1/asociados/pagos/{pagoID}/pay",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	idGen := mocks.NewMockIDGenerator()
	auditRepo := mocks.NewMockAuditRepository()
	invoiceRepo := mocks.NewMockInvoiceRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	asientoRepo := mocks.NewMockAsientoRepository()
	cuentaRepo := mocks.NewMockCuentaRepository()
	vehicleRepo := mocks.NewMockVehicleRepository()
	remesaRepo := mocks.NewMockRemesaRepository()
	pmRepo := mocks.NewMockPaymentMethodRepository()

	companyUC := usecase.NewCompanyUseCase(mocks.NewMockCompanyRepository(domain.CompanyInfo{}), nil)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, companyUC, auditRepo, idGen)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, auditRepo, idGen)
	asientoUC := usecase.NewAsientoUseCase(asientoRepo, cuentaRepo, auditRepo, idGen)
	cuentaUC := usecase.NewCuentaUseCase(cuentaRepo, idGen)
	catalogUC := usecase.NewCatalogUseCase(mocks.NewMockClientRepository(), mocks.NewMockSupplierRepository(), vehicleRepo, mocks.NewMockOfficeRepository(), idGen)
	asociadoUC := usecase.NewAsociadoUseCase(mocks.NewMockAsociadoRepository(), mocks.NewMockPagoAsociadoRepository(), companyUC, auditRepo, idGen)
	dispatchUC := usecase.NewDispatchUseCase(mocks.NewMockTransactionManager(), invoiceRepo, vehicleRepo, remesaRepo, auditRepo, idGen)
	ledgerUC := usecase.NewLedgerUseCase(invoiceRepo, expenseRepo, asientoRepo, cuentaRepo, pmRepo, companyUC)

	cfg := RouterConfig{
		InvoiceHandler:  handler.NewInvoiceHandler(invoiceUC, companyUC),
		ExpenseHandler:  handler.NewExpenseHandler(expenseUC),
		AsientoHandler:  handler.NewAsientoHandler(asientoUC),
		CuentaHandler:   handler.NewCuentaHandler(cuentaUC),
		CatalogHandler:  handler.NewCatalogHandler(catalogUC),
		AsociadoHandler: handler.NewAsociadoHandler(asociadoUC),
		DispatchHandler: handler.NewDispatchHandler(dispatchUC),
		CompanyHandler:  handler.NewCompanyHandler(companyUC, pmRepo),
		LedgerHandler:   handler.NewLedgerHandler(ledgerUC, companyUC),
		AuditHandler:    handler.NewAuditHandler(auditRepo),
		HealthHandler:   &handler.HealthHandler{},
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
