package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asociado is a cooperative member. Vehicles belong to asociados and every
// remesa carries the asociado of the truck that hauled it.
type Asociado struct {
	ID        string
	Codigo    string
	Nombre    string
	Cedula    string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PagoAsociadoStatus tracks whether a member charge has been settled.
type PagoAsociadoStatus string

const (
	PagoAsociadoPendiente PagoAsociadoStatus = "Pendiente"
	PagoAsociadoPagado    PagoAsociadoStatus = "Pagado"
)

// PagoAsociado is a charge raised against a member: certificate quotas,
// cooperative dues, and similar concepts. Amounts are carried in both
// currencies; the USD figure is derived from the BCV rate current when the
// charge is recorded.
type PagoAsociado struct {
	ID               string
	AsociadoID       string
	Concepto         string
	Cuotas           string
	MontoBs          decimal.Decimal
	MontoUsd         decimal.Decimal
	FechaVencimiento time.Time
	Status           PagoAsociadoStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
