package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyInfo is the cooperative-wide configuration snapshot used by every
// financial computation. CostPerKg prices freight in VES per chargeable
// kilogram; BCVRate is the official VES-per-USD exchange rate.
type CompanyInfo struct {
	Name      string
	RIF       string
	Address   string
	Phone     string
	CostPerKg decimal.Decimal
	BCVRate   decimal.Decimal
	UpdatedAt time.Time
}

// ToUSD converts a VES amount at the configured BCV rate. A zero rate
// yields zero rather than a division error.
func (c CompanyInfo) ToUSD(ves decimal.Decimal) decimal.Decimal {
	if c.BCVRate.IsZero() {
		return decimal.Zero
	}
	return ves.Div(c.BCVRate)
}

// PaymentMethod is a cash or bank account invoices and expenses settle
// against, e.g. "Efectivo Bs", "Banco de Venezuela".
type PaymentMethod struct {
	ID   string
	Name string
}

// Office is a cooperative branch referenced by guides as origin/destination
// and by expenses as the paying branch. Code is the short prefix printed on
// dispatch documents.
type Office struct {
	ID   string
	Code string
	Name string
	City string
}
