package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/domain"
)

// Account display names for synthesized ledger lines.
const (
	AccountFleteRevenue    = "Ingresos por Servicios de Flete"
	AccountManejoRevenue   = "Ingresos por Manejo"
	AccountSeguroRevenue   = "Ingresos por Seguro"
	AccountDescuentoVentas = "Descuentos en Ventas"
	AccountIVADebito       = "IVA Débito Fiscal"
	AccountIVACredito      = "IVA Crédito Fiscal"
	AccountIpostelPorPagar = "Retenciones IPOSTEL por Pagar"
	AccountIGTFPorPagar    = "IGTF por Pagar"

	// Fallback labels for unresolvable references.
	AccountCajaBanco         = "Caja/Banco"
	AccountCuentaDesconocida = "Cuenta Desconocida"
)

// Stable grouping keys for synthesized accounts. Movements are grouped by key,
// not by display name, so two accounts with the same label never merge.
const (
	keyFleteRevenue    = "ing:flete"
	keyManejoRevenue   = "ing:manejo"
	keySeguroRevenue   = "ing:seguro"
	keyDescuentoVentas = "desc:ventas"
	keyIVADebito       = "iva:debito"
	keyIVACredito      = "iva:credito"
	keyIpostelPorPagar = "ret:ipostel"
	keyIGTFPorPagar    = "pas:igtf"
)

// Line is one debit or credit of a synthesized journal entry.
type Line struct {
	AccountKey  string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Asiento is a synthesized journal entry: the Libro Diario row.
type Asiento struct {
	ID          string
	Date        time.Time
	Description string
	Lines       []Line
}

func debit(key, name string, amount decimal.Decimal) Line {
	return Line{AccountKey: key, AccountName: name, Debit: amount, Credit: decimal.Zero}
}

func credit(key, name string, amount decimal.Decimal) Line {
	return Line{AccountKey: key, AccountName: name, Debit: decimal.Zero, Credit: amount}
}

// Snapshot is one consistent view of everything the projector reads. The
// caller assembles it before projecting so concurrent mutations cannot
// interleave partial results.
type Snapshot struct {
	Transactions   []Transaction
	Asientos       []*domain.AsientoManual
	Cuentas        []*domain.CuentaContable
	PaymentMethods []*domain.PaymentMethod
	Company        domain.CompanyInfo
}

// paymentMethodLine resolves a payment-method reference to a cash/bank ledger
// line target, degrading to the Caja/Banco label when unknown.
func (s *Snapshot) paymentMethodAccount(id string) (key, name string) {
	for _, pm := range s.PaymentMethods {
		if pm.ID == id {
			return "pm:" + pm.ID, pm.Name
		}
	}
	return "pm:" + id, AccountCajaBanco
}

func (s *Snapshot) cuentaName(id string) string {
	for _, c := range s.Cuentas {
		if c.ID == id {
			return c.Nombre
		}
	}
	return AccountCuentaDesconocida
}

// receivableAccount keys per-client accounts receivable by client id when
// known, falling back to the snapshot name for legacy invoices.
func receivableAccount(inv *domain.Invoice) (key, name string) {
	id := inv.ClientID
	if id == "" {
		id = inv.ClientName
	}
	return "cxc:" + id, "Cuentas por Cobrar - " + inv.ClientName
}

func payableAccount(exp *domain.Expense) (key, name string) {
	id := exp.SupplierRIF
	if id == "" {
		id = exp.SupplierName
	}
	return "cxp:" + id, "Cuentas por Pagar - " + exp.SupplierName
}

// BuildJournal synthesizes the chronological Libro Diario from the snapshot:
// income entries from invoices, purchase entries from expenses, and manual
// entries passed through verbatim, sorted by date ascending.
func BuildJournal(s Snapshot) []Asiento {
	asientos := make([]Asiento, 0, len(s.Transactions)+len(s.Asientos))

	for _, t := range s.Transactions {
		switch t.Type {
		case TypeIngreso:
			if a, ok := incomeAsiento(s, t); ok {
				asientos = append(asientos, a)
			}
		case TypeGasto:
			if t.Expense != nil {
				asientos = append(asientos, expenseAsiento(s, t))
			}
		}
	}

	for _, manual := range s.Asientos {
		asientos = append(asientos, manualAsiento(s, manual))
	}

	sort.SliceStable(asientos, func(i, j int) bool {
		return asientos[i].Date.Before(asientos[j].Date)
	})
	return asientos
}

// incomeAsiento books one invoice. Debit side depends on collection state:
// prepaid-and-paid goes straight to the cash/bank account, anything else sits
// in the client's receivable. A collect-at-destination invoice that is already
// paid additionally moves the amount from receivable to cash.
func incomeAsiento(s Snapshot, t Transaction) (Asiento, bool) {
	inv := t.Invoice
	if inv == nil || inv.IsVoided() {
		return Asiento{}, false
	}

	fin := domain.CalculateFinancials(&inv.Guide, s.Company)
	pmKey, pmName := s.paymentMethodAccount(inv.Guide.PaymentMethodID)
	cxcKey, cxcName := receivableAccount(inv)

	a := Asiento{
		ID:          t.ID,
		Date:        t.Date,
		Description: "Venta según Factura " + inv.InvoiceNumber,
	}

	paid := inv.PaymentStatus == domain.PaymentStatusPagada
	if paid && inv.Guide.PaymentType == domain.PaymentTypePrepaid {
		a.Lines = append(a.Lines, debit(pmKey, pmName, fin.Total))
	} else {
		a.Lines = append(a.Lines, debit(cxcKey, cxcName, fin.Total))
	}

	if inv.Guide.PaymentType == domain.PaymentTypeCollect && paid {
		a.Lines = append(a.Lines, debit(pmKey, pmName, fin.Total))
		a.Lines = append(a.Lines, credit(cxcKey, cxcName, fin.Total))
	}

	a.Lines = append(a.Lines, credit(keyFleteRevenue, AccountFleteRevenue, fin.Freight))
	a.Lines = append(a.Lines, credit(keyManejoRevenue, AccountManejoRevenue, fin.Handling))
	if fin.InsuranceCost.IsPositive() {
		a.Lines = append(a.Lines, credit(keySeguroRevenue, AccountSeguroRevenue, fin.InsuranceCost))
	}
	if fin.Discount.IsPositive() {
		a.Lines = append(a.Lines, debit(keyDescuentoVentas, AccountDescuentoVentas, fin.Discount))
	}
	if fin.IVA.IsPositive() {
		a.Lines = append(a.Lines, credit(keyIVADebito, AccountIVADebito, fin.IVA))
	}
	if fin.Ipostel.IsPositive() {
		a.Lines = append(a.Lines, credit(keyIpostelPorPagar, AccountIpostelPorPagar, fin.Ipostel))
	}
	if fin.IGTF.IsPositive() {
		a.Lines = append(a.Lines, credit(keyIGTFPorPagar, AccountIGTFPorPagar, fin.IGTF))
	}

	return a, true
}

// expenseAsiento books one expense: the deductible base against the category's
// expense account, VAT input when present, settled either through cash/bank or
// the supplier's payable.
func expenseAsiento(s Snapshot, t Transaction) Asiento {
	exp := t.Expense
	pmKey, pmName := s.paymentMethodAccount(exp.PaymentMethodID)

	a := Asiento{
		ID:          t.ID,
		Date:        t.Date,
		Description: fmt.Sprintf("Compra s/g Factura %s de %s", exp.InvoiceNumber, exp.SupplierName),
	}

	a.Lines = append(a.Lines, debit("gasto:"+exp.Category, "Gasto - "+exp.Category, exp.DeductibleBase()))
	if exp.VATAmount.IsPositive() {
		a.Lines = append(a.Lines, debit(keyIVACredito, AccountIVACredito, exp.VATAmount))
	}
	if exp.Status == domain.ExpenseStatusPagado {
		a.Lines = append(a.Lines, credit(pmKey, pmName, exp.Amount))
	} else {
		cxpKey, cxpName := payableAccount(exp)
		a.Lines = append(a.Lines, credit(cxpKey, cxpName, exp.Amount))
	}
	return a
}

// manualAsiento passes a manual entry through verbatim, resolving each line's
// account reference to its display name. Balance was enforced at entry time.
func manualAsiento(s Snapshot, manual *domain.AsientoManual) Asiento {
	a := Asiento{
		ID:          "manual-" + manual.ID,
		Date:        manual.Fecha,
		Description: manual.Descripcion,
	}
	for _, e := range manual.Entries {
		a.Lines = append(a.Lines, Line{
			AccountKey:  "cta:" + e.CuentaID,
			AccountName: s.cuentaName(e.CuentaID),
			Debit:       e.Debe,
			Credit:      e.Haber,
		})
	}
	return a
}
