package usecase

import (
	"context"
	"time"

	"github.com/coopfletes/backoffice/internal/domain"
)

// InvoiceRepository defines data access for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	UpdateTx(ctx context.Context, tx Transaction, invoice *domain.Invoice) error
	List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error)
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.Invoice, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]*domain.Invoice, error)
	NextInvoiceNumber(ctx context.Context) (string, error)
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Expense, error)
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.Expense, error)
}

// AsientoRepository defines data access for manual journal entries.
type AsientoRepository interface {
	Create(ctx context.Context, asiento *domain.AsientoManual) error
	GetByID(ctx context.Context, id string) (*domain.AsientoManual, error)
	Delete(ctx context.Context, id string) error
	ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.AsientoManual, error)
}

// CuentaRepository defines data access for the chart of accounts.
type CuentaRepository interface {
	Create(ctx context.Context, cuenta *domain.CuentaContable) error
	GetByID(ctx context.Context, id string) (*domain.CuentaContable, error)
	Update(ctx context.Context, cuenta *domain.CuentaContable) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.CuentaContable, error)
}

// ClientRepository defines data access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
}

// SupplierRepository defines data access for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Supplier, error)
}

// VehicleRepository defines data access for vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	UpdateTx(ctx context.Context, tx Transaction, vehicle *domain.Vehicle) error
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// OfficeRepository defines data access for cooperative branches.
type OfficeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Office, error)
	List(ctx context.Context) ([]*domain.Office, error)
}

// AsociadoRepository defines data access for cooperative members.
type AsociadoRepository interface {
	Create(ctx context.Context, asociado *domain.Asociado) error
	GetByID(ctx context.Context, id string) (*domain.Asociado, error)
	Update(ctx context.Context, asociado *domain.Asociado) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Asociado, error)
}

// PagoAsociadoRepository defines data access for member charges.
type PagoAsociadoRepository interface {
	Create(ctx context.Context, pago *domain.PagoAsociado) error
	GetByID(ctx context.Context, id string) (*domain.PagoAsociado, error)
	Update(ctx context.Context, pago *domain.PagoAsociado) error
	Delete(ctx context.Context, id string) error
	ListByAsociado(ctx context.Context, asociadoID string) ([]*domain.PagoAsociado, error)
}

// RemesaRepository defines data access for dispatch notes.
type RemesaRepository interface {
	CreateTx(ctx context.Context, tx Transaction, remesa *domain.Remesa) error
	GetByID(ctx context.Context, id string) (*domain.Remesa, error)
	DeleteTx(ctx context.Context, tx Transaction, id string) error
	List(ctx context.Context, limit, offset int) ([]*domain.Remesa, error)
	NextRemesaNumber(ctx context.Context) (string, error)
}

// CompanyRepository defines data access for the company configuration.
type CompanyRepository interface {
	Get(ctx context.Context) (domain.CompanyInfo, error)
	Update(ctx context.Context, info domain.CompanyInfo) error
}

// PaymentMethodRepository defines data access for payment methods.
type PaymentMethodRepository interface {
	List(ctx context.Context) ([]*domain.PaymentMethod, error)
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier reruns an operation when it fails with a transient error, such as
// a deadlock between concurrent dispatch transactions.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
