package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus tracks whether an expense has been settled.
type ExpenseStatus string

const (
	ExpenseStatusPendiente ExpenseStatus = "Pendiente"
	ExpenseStatusPagado    ExpenseStatus = "Pagado"
)

// Expense is an outgoing payment: fuel, maintenance, rent, supplier invoices.
// TaxableBase and VATAmount are only present when the supplier issued a fiscal
// invoice; the ledger falls back to Amount when TaxableBase is zero.
type Expense struct {
	ID              string
	Date            time.Time
	Description     string
	Category        string
	Amount          decimal.Decimal
	TaxableBase     decimal.Decimal
	VATAmount       decimal.Decimal
	Status          ExpenseStatus
	PaymentMethodID string
	OfficeID        string
	SupplierName    string
	SupplierRIF     string
	InvoiceNumber   string
	ControlNumber   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate enforces the minimal expense invariant before persistence.
func (e *Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// DeductibleBase is the amount booked against the expense category account:
// the taxable base when fiscal details exist, the full amount otherwise.
func (e *Expense) DeductibleBase() decimal.Decimal {
	if e.TaxableBase.IsPositive() {
		return e.TaxableBase
	}
	return e.Amount
}
