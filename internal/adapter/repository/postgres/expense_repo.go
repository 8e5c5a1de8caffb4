package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/coopfletes/backoffice/internal/domain"
)

// ExpenseRepository implements usecase.ExpenseRepository.
type ExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{pool: pool}
}

const expenseColumns = `id, date, description, category, amount, taxable_base, vat_amount,
	status, payment_method_id, office_id, supplier_name, supplier_rif,
	invoice_number, control_number, created_at, updated_at`

// Create inserts a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`,
		expense.ID,
		timeToPgTimestamptz(expense.Date),
		expense.Description,
		expense.Category,
		decimalToNumeric(expense.Amount),
		decimalToNumeric(expense.TaxableBase),
		decimalToNumeric(expense.VATAmount),
		string(expense.Status),
		expense.PaymentMethodID,
		expense.OfficeID,
		expense.SupplierName,
		expense.SupplierRIF,
		expense.InvoiceNumber,
		expense.ControlNumber,
		timeToPgTimestamptz(expense.CreatedAt),
		timeToPgTimestamptz(expense.UpdatedAt),
	)

	return err
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Update replaces an expense row.
func (r *ExpenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE expenses SET
			date = $2, description = $3, category = $4, amount = $5,
			taxable_base = $6, vat_amount = $7, status = $8,
			payment_method_id = $9, office_id = $10, supplier_name = $11,
			supplier_rif = $12, invoice_number = $13, control_number = $14,
			updated_at = $15
		WHERE id = $1
	`,
		expense.ID,
		timeToPgTimestamptz(expense.Date),
		expense.Description,
		expense.Category,
		decimalToNumeric(expense.Amount),
		decimalToNumeric(expense.TaxableBase),
		decimalToNumeric(expense.VATAmount),
		string(expense.Status),
		expense.PaymentMethodID,
		expense.OfficeID,
		expense.SupplierName,
		expense.SupplierRIF,
		expense.InvoiceNumber,
		expense.ControlNumber,
		timeToPgTimestamptz(expense.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

// List lists expenses with pagination, newest first.
func (r *ExpenseRepository) List(ctx context.Context, limit, offset int) ([]*domain.Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

// ListByDateRange lists expenses in the date range. Nil bounds are open.
func (r *ExpenseRepository) ListByDateRange(ctx context.Context, start, end *time.Time) ([]*domain.Expense, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+expenseColumns+` FROM expenses
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date
	`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var (
		exp         domain.Expense
		amount      pgtype.Numeric
		taxableBase pgtype.Numeric
		vatAmount   pgtype.Numeric
		date        pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
		status      string
	)

	err := row.Scan(
		&exp.ID,
		&date,
		&exp.Description,
		&exp.Category,
		&amount,
		&taxableBase,
		&vatAmount,
		&status,
		&exp.PaymentMethodID,
		&exp.OfficeID,
		&exp.SupplierName,
		&exp.SupplierRIF,
		&exp.InvoiceNumber,
		&exp.ControlNumber,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	exp.Date = date.Time
	exp.Amount = numericToDecimal(amount)
	exp.TaxableBase = numericToDecimal(taxableBase)
	exp.VATAmount = numericToDecimal(vatAmount)
	exp.Status = domain.ExpenseStatus(status)
	exp.CreatedAt = createdAt.Time
	exp.UpdatedAt = updatedAt.Time

	return &exp, nil
}

func scanExpenses(rows pgx.Rows) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, exp)
	}
	return expenses, rows.Err()
}
