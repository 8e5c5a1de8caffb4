// Package ledger projects invoices, expenses, and manual journal entries into
// the cooperative's accounting books: Libro Diario, Libro Mayor, and Libro
// Auxiliar. Every function here is pure; callers hand in one consistent
// snapshot and get derived values back.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/domain"
)

// TransactionType classifies a unified transaction row.
type TransactionType string

const (
	TypeIngreso TransactionType = "Ingreso"
	TypeGasto   TransactionType = "Gasto"
)

// TypeFilter narrows the projection to income, expenses, or both.
type TypeFilter string

const (
	FilterTodos    TypeFilter = "todos"
	FilterIngresos TypeFilter = "ingresos"
	FilterGastos   TypeFilter = "gastos"
)

// Filter is the date-range and type filter the presentation layer supplies
// before projection. Nil bounds are open.
type Filter struct {
	Start *time.Time
	End   *time.Time
	Type  TypeFilter
}

func (f Filter) includes(date time.Time) bool {
	if f.Start != nil && date.Before(*f.Start) {
		return false
	}
	if f.End != nil && date.After(*f.End) {
		return false
	}
	return true
}

// Transaction unifies an invoice or expense into one row for the
// transactions view and for journal synthesis. Projection-only: recomputed
// from the source collections whenever either changes, never persisted.
type Transaction struct {
	ID          string
	Date        time.Time
	Description string
	Type        TransactionType
	Amount      decimal.Decimal
	Status      string
	Invoice     *domain.Invoice
	Expense     *domain.Expense
}

// Transactions merges invoices and expenses into unified rows, applying the
// filter. Voided invoices are excluded entirely. Rows come back newest first,
// the order the transactions view shows them in.
func Transactions(invoices []*domain.Invoice, expenses []*domain.Expense, f Filter) []Transaction {
	var out []Transaction

	if f.Type != FilterGastos {
		for _, inv := range invoices {
			if inv.IsVoided() || !f.includes(inv.Date) {
				continue
			}
			out = append(out, Transaction{
				ID:          "inc-" + inv.ID,
				Date:        inv.Date,
				Description: "Ingreso por Factura N° " + inv.InvoiceNumber,
				Type:        TypeIngreso,
				Amount:      inv.TotalAmount,
				Status:      string(inv.Status),
				Invoice:     inv,
			})
		}
	}

	if f.Type != FilterIngresos {
		for _, exp := range expenses {
			if !f.includes(exp.Date) {
				continue
			}
			out = append(out, Transaction{
				ID:          "exp-" + exp.ID,
				Date:        exp.Date,
				Description: exp.Description,
				Type:        TypeGasto,
				Amount:      exp.Amount,
				Status:      string(exp.Status),
				Expense:     exp,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// FilterAsientos applies the date range to manual journal entries.
func FilterAsientos(asientos []*domain.AsientoManual, f Filter) []*domain.AsientoManual {
	var out []*domain.AsientoManual
	for _, a := range asientos {
		if f.includes(a.Fecha) {
			out = append(out, a)
		}
	}
	return out
}
