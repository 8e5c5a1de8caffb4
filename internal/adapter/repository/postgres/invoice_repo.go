package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// InvoiceRepository implements usecase.InvoiceRepository. The shipping guide
// travels as one JSONB document; list views read the scalar columns only.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceColumns = `id, invoice_number, control_number, client_id, client_name,
	guide, status, payment_status, shipping_status, total_amount,
	vehicle_id, date, created_at, updated_at`

// Create inserts a new invoice.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	guide, err := json.Marshal(invoice.Guide)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		invoice.ID,
		invoice.InvoiceNumber,
		invoice.ControlNumber,
		invoice.ClientID,
		invoice.ClientName,
		guide,
		string(invoice.Status),
		string(invoice.PaymentStatus),
		string(invoice.ShippingStatus),
		decimalToNumeric(invoice.TotalAmount),
		invoice.VehicleID,
		timeToPgTimestamptz(invoice.Date),
		timeToPgTimestamptz(invoice.CreatedAt),
		timeToPgTimestamptz(invoice.UpdatedAt),
	)

	return err
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	invoice, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, err
	}
	return invoice, nil
}

// Update replaces an invoice row.
func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	return r.update(ctx, r.pool, invoice)
}

// UpdateTx replaces an invoice row inside a transaction.
func (r *InvoiceRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, invoice *domain.Invoice) error {
	return r.update(ctx, tx.(*Tx).PgxTx(), invoice)
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (r *InvoiceRepository) update(ctx context.Context, db execer, invoice *domain.Invoice) error {
	guide, err := json.Marshal(invoice.Guide)
	if err != nil {
		return err
	}

	tag, err := db.Exec(ctx, `
		UPDATE invoices SET
			control_number = $2, client_id = $3, client_name = $4, guide = $5,
			status = $6, payment_status = $7, shipping_status = $8,
			total_amount = $9, vehicle_id = $10, date = $11, updated_at = $12
		WHERE id = $1
	`,
		invoice.ID,
		invoice.ControlNumber,
		invoice.ClientID,
		invoice.ClientName,
		guide,
		string(invoice.Status),
		string(invoice.PaymentStatus),
		string(invoice.ShippingStatus),
		decimalToNumeric(invoice.TotalAmount),
		invoice.VehicleID,
		timeToPgTimestamptz(invoice.Date),
		timeToPgTimestamptz(invoice.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

// List lists invoices with pagination, newest first.
func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

// ListByDateRange lists invoices in the date range. Nil bounds are open.
func (r *InvoiceRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

// ListByVehicle lists undelivered invoices currently on a vehicle.
func (r *InvoiceRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]*domain.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceColumns+` FROM invoices
		WHERE vehicle_id = $1 AND status <> $2
		ORDER BY date
	`, vehicleID, string(domain.MasterStatusAnulada))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanInvoices(rows)
}

// NextInvoiceNumber pulls the next value off the invoice number sequence.
func (r *InvoiceRepository) NextInvoiceNumber(ctx context.Context) (string, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('invoice_number_seq')`).Scan(&n); err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	var (
		inv       domain.Invoice
		guide     []byte
		total     pgtype.Numeric
		date      pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
		status    string
		payment   string
		shipping  string
	)

	err := row.Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.ControlNumber,
		&inv.ClientID,
		&inv.ClientName,
		&guide,
		&status,
		&payment,
		&shipping,
		&total,
		&inv.VehicleID,
		&date,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(guide, &inv.Guide); err != nil {
		return nil, err
	}
	inv.Status = domain.MasterStatus(status)
	inv.PaymentStatus = domain.PaymentStatus(payment)
	inv.ShippingStatus = domain.ShippingStatus(shipping)
	inv.TotalAmount = numericToDecimal(total)
	inv.Date = date.Time
	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return &inv, nil
}

func scanInvoices(rows pgx.Rows) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// Type conversion helpers shared by the repositories in this package.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
