package domain

import "time"

// CuentaType classifies a chart-of-accounts entry.
type CuentaType string

const (
	CuentaTypeActivo     CuentaType = "Activo"
	CuentaTypePasivo     CuentaType = "Pasivo"
	CuentaTypePatrimonio CuentaType = "Patrimonio"
	CuentaTypeIngreso    CuentaType = "Ingreso"
	CuentaTypeGasto      CuentaType = "Gasto"
)

// CuentaContable is one entry of the plan de cuentas. Ledger projections key
// movements by the stable ID; the code and name are display-only, so two
// accounts that happen to share a name never merge balances.
type CuentaContable struct {
	ID        string
	Codigo    string
	Nombre    string
	Tipo      CuentaType
	CreatedAt time.Time
	UpdatedAt time.Time
}
