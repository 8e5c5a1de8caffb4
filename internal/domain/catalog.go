package domain

import "time"

// Client is a registered customer of the cooperative.
type Client struct {
	ID        string
	Name      string
	IDNumber  string
	Phone     string
	Address   string
	Type      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier is a vendor expenses are booked against.
type Supplier struct {
	ID        string
	Name      string
	RIF       string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VehicleStatus tracks a truck through the dispatch cycle.
type VehicleStatus string

const (
	VehicleStatusDisponible VehicleStatus = "Disponible"
	VehicleStatusCargando   VehicleStatus = "Cargando"
	VehicleStatusEnRuta     VehicleStatus = "En Ruta"
)

// Vehicle is a cooperative truck that carries dispatched invoices.
type Vehicle struct {
	ID         string
	Placa      string
	Modelo     string
	Capacity   string
	AsociadoID string
	Status     VehicleStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Remesa is the dispatch note generated when a loaded vehicle leaves: the
// manifest of invoices on board.
type Remesa struct {
	ID           string
	RemesaNumber string
	VehicleID    string
	AsociadoID   string
	InvoiceIDs   []string
	Date         time.Time
	CreatedAt    time.Time
}
