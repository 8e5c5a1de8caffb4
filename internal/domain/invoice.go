package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MasterStatus is the invoice's overall lifecycle state.
type MasterStatus string

const (
	MasterStatusActiva  MasterStatus = "Activa"
	MasterStatusAnulada MasterStatus = "Anulada"
)

// PaymentStatus tracks whether the invoice has been collected.
type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "Pendiente"
	PaymentStatusPagada    PaymentStatus = "Pagada"
)

// ShippingStatus tracks the cargo through dispatch.
type ShippingStatus string

const (
	ShippingStatusPendiente  ShippingStatus = "Pendiente para Despacho"
	ShippingStatusAsignada   ShippingStatus = "Asignada"
	ShippingStatusEnTransito ShippingStatus = "En Tránsito"
	ShippingStatusEntregada  ShippingStatus = "Entregada"
)

// Invoice is a billed shipping guide. TotalAmount caches the financial total
// computed at submission time; the ledger recomputes from the guide instead of
// trusting the cache.
type Invoice struct {
	ID             string
	InvoiceNumber  string
	ControlNumber  string
	ClientID       string
	ClientName     string
	Guide          ShippingGuide
	Status         MasterStatus
	PaymentStatus  PaymentStatus
	ShippingStatus ShippingStatus
	TotalAmount    decimal.Decimal
	VehicleID      string
	Date           time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsVoided reports whether the invoice is excluded from all accounting.
func (i *Invoice) IsVoided() bool {
	return i.Status == MasterStatusAnulada
}

// ChargeableWeight is the total billed weight of the invoice's guide in kg.
func (i *Invoice) ChargeableWeight() decimal.Decimal {
	if i == nil {
		return decimal.Zero
	}
	return i.Guide.ChargeableWeight()
}
