package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit mismatch a manual journal
// entry may carry and still be accepted.
var BalanceTolerance = decimal.NewFromFloat(0.001)

// AsientoManualEntry is one line of a manually recorded journal entry.
type AsientoManualEntry struct {
	CuentaID string
	Debe     decimal.Decimal
	Haber    decimal.Decimal
}

// AsientoManual is a balanced double-entry journal entry recorded by hand,
// e.g. opening balances or corrections. The balance invariant is enforced
// here, at acceptance time; the ledger projector trusts stored entries.
type AsientoManual struct {
	ID          string
	Fecha       time.Time
	Descripcion string
	Entries     []AsientoManualEntry
	CreatedAt   time.Time
}

// Totals returns the entry's debit and credit sums.
func (a *AsientoManual) Totals() (debe, haber decimal.Decimal) {
	debe, haber = decimal.Zero, decimal.Zero
	for _, e := range a.Entries {
		debe = debe.Add(e.Debe)
		haber = haber.Add(e.Haber)
	}
	return debe, haber
}

// Validate checks the double-entry invariants: at least two lines, every line
// tied to an account, and sum(debe) equal to sum(haber) within tolerance.
func (a *AsientoManual) Validate() error {
	if len(a.Entries) < 2 {
		return ErrAsientoTooFewLines
	}
	for _, e := range a.Entries {
		if e.CuentaID == "" {
			return ErrAsientoMissingCuenta
		}
	}
	debe, haber := a.Totals()
	if debe.Sub(haber).Abs().GreaterThanOrEqual(BalanceTolerance) {
		return ErrAsientoUnbalanced
	}
	return nil
}
