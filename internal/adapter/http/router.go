package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/coopfletes/backoffice/internal/adapter/http/handler"
	"github.com/coopfletes/backoffice/internal/adapter/http/middleware"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	InvoiceHandler   *handler.InvoiceHandler
	ExpenseHandler   *handler.ExpenseHandler
	AsientoHandler   *handler.AsientoHandler
	CuentaHandler    *handler.CuentaHandler
	CatalogHandler   *handler.CatalogHandler
	AsociadoHandler  *handler.AsociadoHandler
	DispatchHandler  *handler.DispatchHandler
	CompanyHandler   *handler.CompanyHandler
	LedgerHandler    *handler.LedgerHandler
	AuditHandler     *handler.AuditHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Invoices
		r.Route("/invoices", func(r chi.Router) {
			r.Post("/", cfg.InvoiceHandler.Create)
			r.Get("/", cfg.InvoiceHandler.List)
			r.Get("/{id}", cfg.InvoiceHandler.Get)
			r.Put("/{id}", cfg.InvoiceHandler.Update)
			r.Patch("/{id}/status", cfg.InvoiceHandler.UpdateStatus)
			r.Get("/{id}/financials", cfg.InvoiceHandler.Financials)
			r.Post("/{id}/assign", cfg.DispatchHandler.Assign)
			r.Post("/{id}/unassign", cfg.DispatchHandler.Unassign)
		})

		// Expenses
		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.ExpenseHandler.Create)
			r.Get("/", cfg.ExpenseHandler.List)
			r.Get("/{id}", cfg.ExpenseHandler.Get)
			r.Put("/{id}", cfg.ExpenseHandler.Update)
			r.Post("/{id}/pay", cfg.ExpenseHandler.MarkPaid)
			r.Delete("/{id}", cfg.ExpenseHandler.Delete)
		})

		// Manual journal entries
		r.Route("/asientos", func(r chi.Router) {
			r.Post("/", cfg.AsientoHandler.Create)
			r.Get("/", cfg.AsientoHandler.List)
			r.Get("/{id}", cfg.AsientoHandler.Get)
			r.Delete("/{id}", cfg.AsientoHandler.Delete)
		})

		// Chart of accounts
		r.Route("/cuentas", func(r chi.Router) {
			r.Post("/", cfg.CuentaHandler.Create)
			r.Get("/", cfg.CuentaHandler.List)
			r.Get("/{id}", cfg.CuentaHandler.Get)
			r.Put("/{id}", cfg.CuentaHandler.Update)
			r.Delete("/{id}", cfg.CuentaHandler.Delete)
		})

		// Catalogs
		r.Route("/clients", func(r chi.Router) {
			r.Post("/", cfg.CatalogHandler.CreateClient)
			r.Get("/", cfg.CatalogHandler.ListClients)
			r.Get("/{id}", cfg.CatalogHandler.GetClient)
			r.Put("/{id}", cfg.CatalogHandler.UpdateClient)
			r.Delete("/{id}", cfg.CatalogHandler.DeleteClient)
		})
		r.Route("/suppliers", func(r chi.Router) {
			r.Post("/", cfg.CatalogHandler.CreateSupplier)
			r.Get("/", cfg.CatalogHandler.ListSuppliers)
			r.Get("/{id}", cfg.CatalogHandler.GetSupplier)
			r.Put("/{id}", cfg.CatalogHandler.UpdateSupplier)
			r.Delete("/{id}", cfg.CatalogHandler.DeleteSupplier)
		})
		r.Get("/offices", cfg.CatalogHandler.ListOffices)
		r.Route("/asociados", func(r chi.Router) {
			r.Post("/", cfg.AsociadoHandler.Create)
			r.Get("/", cfg.AsociadoHandler.List)
			r.Put("/pagos/{pagoID}", cfg.AsociadoHandler.UpdatePago)
			r.Delete("/pagos/{pagoID}", cfg.AsociadoHandler.DeletePago)
			r.Post("/pagos/{pagoID}/pay", cfg.AsociadoHandler.PayPago)
			r.Get("/{id}", cfg.AsociadoHandler.Get)
			r.Put("/{id}", cfg.AsociadoHandler.Update)
			r.Delete("/{id}", cfg.AsociadoHandler.Delete)
			r.Get("/{id}/pagos", cfg.AsociadoHandler.ListPagos)
			r.Post("/{id}/pagos", cfg.AsociadoHandler.CreatePago)
		})
		r.Route("/vehicles", func(r chi.Router) {
			r.Post("/", cfg.CatalogHandler.CreateVehicle)
			r.Get("/", cfg.CatalogHandler.ListVehicles)
			r.Get("/{id}", cfg.CatalogHandler.GetVehicle)
			r.Put("/{id}", cfg.CatalogHandler.UpdateVehicle)
			r.Post("/{id}/dispatch", cfg.DispatchHandler.Dispatch)
			r.Post("/{id}/finalize-trip", cfg.DispatchHandler.FinalizeTrip)
		})

		// Dispatch notes
		r.Route("/remesas", func(r chi.Router) {
			r.Get("/", cfg.DispatchHandler.ListRemesas)
			r.Get("/{id}", cfg.DispatchHandler.GetRemesa)
			r.Delete("/{id}", cfg.DispatchHandler.DeleteRemesa)
		})

		// Company configuration
		r.Route("/company", func(r chi.Router) {
			r.Get("/", cfg.CompanyHandler.Get)
			r.Put("/", cfg.CompanyHandler.Update)
			r.Get("/payment-methods", cfg.CompanyHandler.PaymentMethods)
		})

		// Ledger projections
		r.Route("/ledger", func(r chi.Router) {
			r.Get("/transactions", cfg.LedgerHandler.Transactions)
			r.Get("/diario", cfg.LedgerHandler.Journal)
			r.Get("/diario/export", cfg.LedgerHandler.ExportJournal)
			r.Get("/mayor", cfg.LedgerHandler.GeneralLedger)
			r.Get("/mayor/export", cfg.LedgerHandler.ExportGeneralLedger)
			r.Get("/auxiliar", cfg.LedgerHandler.AuxiliaryLedger)
			r.Get("/auxiliar/export", cfg.LedgerHandler.ExportAuxiliaryLedger)
			r.Get("/accounts", cfg.LedgerHandler.Accounts)
		})

		// Audit trail
		r.Get("/audit", cfg.AuditHandler.List)
	})

	return r
}
