package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes prepaid freight from freight collected at
// destination.
type PaymentType string

const (
	PaymentTypePrepaid PaymentType = "flete-pagado"
	PaymentTypeCollect PaymentType = "flete-destino"
)

// Currency the guide settles in. IGTF only applies to USD settlements.
type Currency string

const (
	CurrencyVES Currency = "VES"
	CurrencyUSD Currency = "USD"
)

// Party is a snapshot of a sender or receiver taken when the guide is
// written, so later edits to the client record do not rewrite history.
type Party struct {
	Name     string
	IDNumber string
	Phone    string
	Address  string
	Type     string
}

// MerchandiseItem is one line of cargo on a guide. Weight is in kg,
// dimensions in cm.
type MerchandiseItem struct {
	Description string
	Category    string
	Quantity    decimal.Decimal
	Weight      decimal.Decimal
	Length      decimal.Decimal
	Width       decimal.Decimal
	Height      decimal.Decimal
}

// ShippingGuide captures a shipping order: who sends what to whom, through
// which offices, and under which payment terms.
type ShippingGuide struct {
	Sender              Party
	Receiver            Party
	Merchandise         []MerchandiseItem
	OriginOfficeID      string
	DestinationOfficeID string
	ShippingTypeID      string
	PaymentMethodID     string
	PaymentType         PaymentType
	PaymentCurrency     Currency
	HasInsurance        bool
	DeclaredValue       decimal.Decimal
	InsurancePercentage decimal.Decimal
	HasDiscount         bool
	DiscountPercentage  decimal.Decimal
	Date                time.Time
}

// Validate enforces the guide invariant: a non-empty merchandise list where
// every item has a positive weight or positive dimensions.
func (g *ShippingGuide) Validate() error {
	if len(g.Merchandise) == 0 {
		return ErrEmptyMerchandise
	}
	for _, item := range g.Merchandise {
		if item.Weight.IsPositive() {
			continue
		}
		if item.Length.IsPositive() && item.Width.IsPositive() && item.Height.IsPositive() {
			continue
		}
		return ErrInvalidItem
	}
	return nil
}
