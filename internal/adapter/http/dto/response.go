package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/ledger"
)

// PartyResponse represents a sender or receiver in API responses.
type PartyResponse struct {
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Type     string `json:"type"`
}

func partyFromDomain(p domain.Party) PartyResponse {
	return PartyResponse{
		Name:     p.Name,
		IDNumber: p.IDNumber,
		Phone:    p.Phone,
		Address:  p.Address,
		Type:     p.Type,
	}
}

// MerchandiseItemResponse represents one cargo line in API responses.
type MerchandiseItemResponse struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    decimal.Decimal `json:"quantity"`
	Weight      decimal.Decimal `json:"weight"`
	Length      decimal.Decimal `json:"length"`
	Width       decimal.Decimal `json:"width"`
	Height      decimal.Decimal `json:"height"`
}

// GuideResponse represents a shipping guide in API responses.
type GuideResponse struct {
	Sender              PartyResponse             `json:"sender"`
	Receiver            PartyResponse             `json:"receiver"`
	Merchandise         []MerchandiseItemResponse `json:"merchandise"`
	OriginOfficeID      string                    `json:"origin_office_id"`
	DestinationOfficeID string                    `json:"destination_office_id"`
	ShippingTypeID      string                    `json:"shipping_type_id"`
	PaymentMethodID     string                    `json:"payment_method_id"`
	PaymentType         string                    `json:"payment_type"`
	PaymentCurrency     string                    `json:"payment_currency"`
	HasInsurance        bool                      `json:"has_insurance"`
	DeclaredValue       decimal.Decimal           `json:"declared_value"`
	InsurancePercentage decimal.Decimal           `json:"insurance_percentage"`
	HasDiscount         bool                      `json:"has_discount"`
	DiscountPercentage  decimal.Decimal           `json:"discount_percentage"`
	Date                time.Time                 `json:"date"`
}

// GuideFromDomain converts a domain guide to a response.
func GuideFromDomain(g domain.ShippingGuide) GuideResponse {
	items := make([]MerchandiseItemResponse, len(g.Merchandise))
	for i, m := range g.Merchandise {
		items[i] = MerchandiseItemResponse{
			Description: m.Description,
			Category:    m.Category,
			Quantity:    m.Quantity,
			Weight:      m.Weight,
			Length:      m.Length,
			Width:       m.Width,
			Height:      m.Height,
		}
	}
	return GuideResponse{
		Sender:              partyFromDomain(g.Sender),
		Receiver:            partyFromDomain(g.Receiver),
		Merchandise:         items,
		OriginOfficeID:      g.OriginOfficeID,
		DestinationOfficeID: g.DestinationOfficeID,
		ShippingTypeID:      g.ShippingTypeID,
		PaymentMethodID:     g.PaymentMethodID,
		PaymentType:         string(g.PaymentType),
		PaymentCurrency:     string(g.PaymentCurrency),
		HasInsurance:        g.HasInsurance,
		DeclaredValue:       g.DeclaredValue,
		InsurancePercentage: g.InsurancePercentage,
		HasDiscount:         g.HasDiscount,
		DiscountPercentage:  g.DiscountPercentage,
		Date:                g.Date,
	}
}

// InvoiceResponse represents an invoice in API responses.
type InvoiceResponse struct {
	ID             string          `json:"id"`
	InvoiceNumber  string          `json:"invoice_number"`
	ControlNumber  string          `json:"control_number"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name"`
	Guide          GuideResponse   `json:"guide"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"payment_status"`
	ShippingStatus string          `json:"shipping_status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	VehicleID      string          `json:"vehicle_id,omitempty"`
	Date           time.Time       `json:"date"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// InvoiceFromDomain converts a domain invoice to a response.
func InvoiceFromDomain(i *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:             i.ID,
		InvoiceNumber:  i.InvoiceNumber,
		ControlNumber:  i.ControlNumber,
		ClientID:       i.ClientID,
		ClientName:     i.ClientName,
		Guide:          GuideFromDomain(i.Guide),
		Status:         string(i.Status),
		PaymentStatus:  string(i.PaymentStatus),
		ShippingStatus: string(i.ShippingStatus),
		TotalAmount:    i.TotalAmount,
		VehicleID:      i.VehicleID,
		Date:           i.Date,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

// InvoicesFromDomain converts domain invoices to responses.
func InvoicesFromDomain(invoices []*domain.Invoice) []*InvoiceResponse {
	result := make([]*InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = InvoiceFromDomain(inv)
	}
	return result
}

// FinancialsResponse represents a guide's charge breakdown, in VES with the
// total also converted to USD at the configured BCV rate.
type FinancialsResponse struct {
	Freight       decimal.Decimal `json:"freight"`
	InsuranceCost decimal.Decimal `json:"insurance_cost"`
	Handling      decimal.Decimal `json:"handling"`
	Discount      decimal.Decimal `json:"discount"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Ipostel       decimal.Decimal `json:"ipostel"`
	IVA           decimal.Decimal `json:"iva"`
	IGTF          decimal.Decimal `json:"igtf"`
	Total         decimal.Decimal `json:"total"`
	TotalUSD      decimal.Decimal `json:"total_usd"`
}

// FinancialsFromDomain converts a domain breakdown to a response.
func FinancialsFromDomain(f domain.Financials, company domain.CompanyInfo) FinancialsResponse {
	return FinancialsResponse{
		Freight:       f.Freight,
		InsuranceCost: f.InsuranceCost,
		Handling:      f.Handling,
		Discount:      f.Discount,
		Subtotal:      f.Subtotal,
		Ipostel:       f.Ipostel,
		IVA:           f.IVA,
		IGTF:          f.IGTF,
		Total:         f.Total,
		TotalUSD:      company.ToUSD(f.Total),
	}
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	TaxableBase     decimal.Decimal `json:"taxable_base"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	Status          string          `json:"status"`
	PaymentMethodID string          `json:"payment_method_id"`
	OfficeID        string          `json:"office_id"`
	SupplierName    string          `json:"supplier_name"`
	SupplierRIF     string          `json:"supplier_rif"`
	InvoiceNumber   string          `json:"invoice_number"`
	ControlNumber   string          `json:"control_number"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:              e.ID,
		Date:            e.Date,
		Description:     e.Description,
		Category:        e.Category,
		Amount:          e.Amount,
		TaxableBase:     e.TaxableBase,
		VATAmount:       e.VATAmount,
		Status:          string(e.Status),
		PaymentMethodID: e.PaymentMethodID,
		OfficeID:        e.OfficeID,
		SupplierName:    e.SupplierName,
		SupplierRIF:     e.SupplierRIF,
		InvoiceNumber:   e.InvoiceNumber,
		ControlNumber:   e.ControlNumber,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// AsientoEntryResponse represents one line of a manual journal entry.
type AsientoEntryResponse struct {
	CuentaID string          `json:"cuenta_id"`
	Debe     decimal.Decimal `json:"debe"`
	Haber    decimal.Decimal `json:"haber"`
}

// AsientoManualResponse represents a manual journal entry in API responses.
type AsientoManualResponse struct {
	ID          string                 `json:"id"`
	Fecha       time.Time              `json:"fecha"`
	Descripcion string                 `json:"descripcion"`
	Entries     []AsientoEntryResponse `json:"entries"`
	CreatedAt   time.Time              `json:"created_at"`
}

// AsientoManualFromDomain converts a domain manual entry to a response.
func AsientoManualFromDomain(a *domain.AsientoManual) *AsientoManualResponse {
	entries := make([]AsientoEntryResponse, len(a.Entries))
	for i, e := range a.Entries {
		entries[i] = AsientoEntryResponse{CuentaID: e.CuentaID, Debe: e.Debe, Haber: e.Haber}
	}
	return &AsientoManualResponse{
		ID:          a.ID,
		Fecha:       a.Fecha,
		Descripcion: a.Descripcion,
		Entries:     entries,
		CreatedAt:   a.CreatedAt,
	}
}

// AsientosManualesFromDomain converts domain manual entries to responses.
func AsientosManualesFromDomain(asientos []*domain.AsientoManual) []*AsientoManualResponse {
	result := make([]*AsientoManualResponse, len(asientos))
	for i, a := range asientos {
		result[i] = AsientoManualFromDomain(a)
	}
	return result
}

// CuentaResponse represents a chart-of-accounts entry in API responses.
type CuentaResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Nombre    string    `json:"nombre"`
	Tipo      string    `json:"tipo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CuentaFromDomain converts a domain account to a response.
func CuentaFromDomain(c *domain.CuentaContable) *CuentaResponse {
	return &CuentaResponse{
		ID:        c.ID,
		Codigo:    c.Codigo,
		Nombre:    c.Nombre,
		Tipo:      string(c.Tipo),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CuentasFromDomain converts domain accounts to responses.
func CuentasFromDomain(cuentas []*domain.CuentaContable) []*CuentaResponse {
	result := make([]*CuentaResponse, len(cuentas))
	for i, c := range cuentas {
		result[i] = CuentaFromDomain(c)
	}
	return result
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IDNumber  string    `json:"id_number"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientFromDomain converts a domain client to a response.
func ClientFromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		IDNumber:  c.IDNumber,
		Phone:     c.Phone,
		Address:   c.Address,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ClientsFromDomain converts domain clients to responses.
func ClientsFromDomain(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}
	return result
}

// SupplierResponse represents a supplier in API responses.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	RIF       string    `json:"rif"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupplierFromDomain converts a domain supplier to a response.
func SupplierFromDomain(s *domain.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		RIF:       s.RIF,
		Phone:     s.Phone,
		Address:   s.Address,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SuppliersFromDomain converts domain suppliers to responses.
func SuppliersFromDomain(suppliers []*domain.Supplier) []*SupplierResponse {
	result := make([]*SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		result[i] = SupplierFromDomain(s)
	}
	return result
}

// VehicleResponse represents a vehicle in API responses.
type VehicleResponse struct {
	ID         string    `json:"id"`
	Placa      string    `json:"placa"`
	Modelo     string    `json:"modelo"`
	Capacity   string    `json:"capacity"`
	AsociadoID string    `json:"asociado_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// VehicleFromDomain converts a domain vehicle to a response.
func VehicleFromDomain(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:         v.ID,
		Placa:      v.Placa,
		Modelo:     v.Modelo,
		Capacity:   v.Capacity,
		AsociadoID: v.AsociadoID,
		Status:     string(v.Status),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// VehiclesFromDomain converts domain vehicles to responses.
func VehiclesFromDomain(vehicles []*domain.Vehicle) []*VehicleResponse {
	result := make([]*VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		result[i] = VehicleFromDomain(v)
	}
	return result
}

// OfficeResponse represents a branch office in API responses.
type OfficeResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// OfficesFromDomain converts domain offices to responses.
func OfficesFromDomain(offices []*domain.Office) []*OfficeResponse {
	result := make([]*OfficeResponse, len(offices))
	for i, o := range offices {
		result[i] = &OfficeResponse{ID: o.ID, Code: o.Code, Name: o.Name, City: o.City}
	}
	return result
}

// AsociadoResponse represents a cooperative member in API responses.
type AsociadoResponse struct {
	ID        string    `json:"id"`
	Codigo    string    `json:"codigo"`
	Nombre    string    `json:"nombre"`
	Cedula    string    `json:"cedula"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AsociadoFromDomain converts a domain asociado to a response.
func AsociadoFromDomain(a *domain.Asociado) *AsociadoResponse {
	return &AsociadoResponse{
		ID:        a.ID,
		Codigo:    a.Codigo,
		Nombre:    a.Nombre,
		Cedula:    a.Cedula,
		Phone:     a.Phone,
		Address:   a.Address,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AsociadosFromDomain converts domain asociados to responses.
func AsociadosFromDomain(asociados []*domain.Asociado) []*AsociadoResponse {
	result := make([]*AsociadoResponse, len(asociados))
	for i, a := range asociados {
		result[i] = AsociadoFromDomain(a)
	}
	return result
}

// PagoAsociadoResponse represents a member charge in API responses.
type PagoAsociadoResponse struct {
	ID               string          `json:"id"`
	AsociadoID       string          `json:"asociado_id"`
	Concepto         string          `json:"concepto"`
	Cuotas           string          `json:"cuotas"`
	MontoBs          decimal.Decimal `json:"monto_bs"`
	MontoUsd         decimal.Decimal `json:"monto_usd"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// PagoAsociadoFromDomain converts a domain member charge to a response.
func PagoAsociadoFromDomain(p *domain.PagoAsociado) *PagoAsociadoResponse {
	return &PagoAsociadoResponse{
		ID:               p.ID,
		AsociadoID:       p.AsociadoID,
		Concepto:         p.Concepto,
		Cuotas:           p.Cuotas,
		MontoBs:          p.MontoBs,
		MontoUsd:         p.MontoUsd,
		FechaVencimiento: p.FechaVencimiento,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// PagosAsociadosFromDomain converts domain member charges to responses.
func PagosAsociadosFromDomain(pagos []*domain.PagoAsociado) []*PagoAsociadoResponse {
	result := make([]*PagoAsociadoResponse, len(pagos))
	for i, p := range pagos {
		result[i] = PagoAsociadoFromDomain(p)
	}
	return result
}

// RemesaResponse represents a dispatch note in API responses.
type RemesaResponse struct {
	ID           string    `json:"id"`
	RemesaNumber string    `json:"remesa_number"`
	VehicleID    string    `json:"vehicle_id"`
	AsociadoID   string    `json:"asociado_id"`
	InvoiceIDs   []string  `json:"invoice_ids"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
}

// RemesaFromDomain converts a domain dispatch note to a response.
func RemesaFromDomain(r *domain.Remesa) *RemesaResponse {
	return &RemesaResponse{
		ID:           r.ID,
		RemesaNumber: r.RemesaNumber,
		VehicleID:    r.VehicleID,
		AsociadoID:   r.AsociadoID,
		InvoiceIDs:   r.InvoiceIDs,
		Date:         r.Date,
		CreatedAt:    r.CreatedAt,
	}
}

// RemesasFromDomain converts domain dispatch notes to responses.
func RemesasFromDomain(remesas []*domain.Remesa) []*RemesaResponse {
	result := make([]*RemesaResponse, len(remesas))
	for i, r := range remesas {
		result[i] = RemesaFromDomain(r)
	}
	return result
}

// CompanyResponse represents the company configuration in API responses.
type CompanyResponse struct {
	Name      string          `json:"name"`
	RIF       string          `json:"rif"`
	Address   string          `json:"address"`
	Phone     string          `json:"phone"`
	CostPerKg decimal.Decimal `json:"cost_per_kg"`
	BCVRate   decimal.Decimal `json:"bcv_rate"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CompanyFromDomain converts the domain company configuration to a response.
func CompanyFromDomain(c domain.CompanyInfo) CompanyResponse {
	return CompanyResponse{
		Name:      c.Name,
		RIF:       c.RIF,
		Address:   c.Address,
		Phone:     c.Phone,
		CostPerKg: c.CostPerKg,
		BCVRate:   c.BCVRate,
		UpdatedAt: c.UpdatedAt,
	}
}

// PaymentMethodResponse represents a payment method in API responses.
type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentMethodsFromDomain converts domain payment methods to responses.
func PaymentMethodsFromDomain(methods []*domain.PaymentMethod) []*PaymentMethodResponse {
	result := make([]*PaymentMethodResponse, len(methods))
	for i, m := range methods {
		result[i] = &PaymentMethodResponse{ID: m.ID, Name: m.Name}
	}
	return result
}

// TransactionResponse represents a unified income/expense row.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
}

// TransactionsFromLedger converts projection rows to responses.
func TransactionsFromLedger(transactions []ledger.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionResponse{
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Description,
			Type:        string(t.Type),
			Amount:      t.Amount,
			Status:      t.Status,
		}
	}
	return result
}

// JournalLineResponse represents one debit or credit of a journal entry.
type JournalLineResponse struct {
	AccountKey  string          `json:"account_key"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntryResponse represents a Libro Diario row.
type JournalEntryResponse struct {
	ID          string                `json:"id"`
	Date        time.Time             `json:"date"`
	Description string                `json:"description"`
	Lines       []JournalLineResponse `json:"lines"`
}

// JournalFromLedger converts synthesized journal entries to responses.
func JournalFromLedger(asientos []ledger.Asiento) []JournalEntryResponse {
	result := make([]JournalEntryResponse, len(asientos))
	for i, a := range asientos {
		lines := make([]JournalLineResponse, len(a.Lines))
		for j, l := range a.Lines {
			lines[j] = JournalLineResponse{
				AccountKey:  l.AccountKey,
				AccountName: l.AccountName,
				Debit:       l.Debit,
				Credit:      l.Credit,
			}
		}
		result[i] = JournalEntryResponse{
			ID:          a.ID,
			Date:        a.Date,
			Description: a.Description,
			Lines:       lines,
		}
	}
	return result
}

// MovementResponse represents one account movement with its running balance.
type MovementResponse struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// AccountLedgerResponse represents a Libro Mayor or Libro Auxiliar view of
// one account.
type AccountLedgerResponse struct {
	AccountKey   string             `json:"account_key"`
	AccountName  string             `json:"account_name"`
	Movements    []MovementResponse `json:"movements"`
	TotalDebit   decimal.Decimal    `json:"total_debit"`
	TotalCredit  decimal.Decimal    `json:"total_credit"`
	FinalBalance decimal.Decimal    `json:"final_balance"`
}

// AccountLedgerFromLedger converts a projection to a response.
func AccountLedgerFromLedger(l ledger.AccountLedger) AccountLedgerResponse {
	movements := make([]MovementResponse, len(l.Movements))
	for i, m := range l.Movements {
		movements[i] = MovementResponse{
			Date:        m.Date,
			Description: m.Description,
			Debit:       m.Debit,
			Credit:      m.Credit,
			Balance:     m.Balance,
		}
	}
	return AccountLedgerResponse{
		AccountKey:   l.AccountKey,
		AccountName:  l.AccountName,
		Movements:    movements,
		TotalDebit:   l.TotalDebit,
		TotalCredit:  l.TotalCredit,
		FinalBalance: l.FinalBalance,
	}
}

// AccountLedgersFromLedger converts projections to responses.
func AccountLedgersFromLedger(ledgers []ledger.AccountLedger) []AccountLedgerResponse {
	result := make([]AccountLedgerResponse, len(ledgers))
	for i, l := range ledgers {
		result[i] = AccountLedgerFromLedger(l)
	}
	return result
}

// AccountRefResponse represents a selectable account in the projection.
type AccountRefResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// AccountRefsFromLedger converts account references to responses.
func AccountRefsFromLedger(refs []ledger.AccountRef) []AccountRefResponse {
	result := make([]AccountRefResponse, len(refs))
	for i, r := range refs {
		result[i] = AccountRefResponse{Key: r.Key, Name: r.Name}
	}
	return result
}

// AuditLogResponse represents an audit record in API responses.
type AuditLogResponse struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	Action       string      `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id"`
	Details      string      `json:"details"`
	RequestID    string      `json:"request_id,omitempty"`
	BeforeState  domain.JSON `json:"before_state,omitempty"`
	AfterState   domain.JSON `json:"after_state,omitempty"`
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// AuditLogFromDomain converts a domain audit record to a response.
func AuditLogFromDomain(l *domain.AuditLog) *AuditLogResponse {
	return &AuditLogResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		Action:       l.Action,
		ResourceType: l.ResourceType,
		ResourceID:   l.ResourceID,
		Details:      l.Details,
		RequestID:    l.RequestID,
		BeforeState:  l.BeforeState,
		AfterState:   l.AfterState,
		Status:       l.Status,
		ErrorMessage: l.ErrorMessage,
		CreatedAt:    l.CreatedAt,
	}
}

// AuditLogsFromDomain converts domain audit records to responses.
func AuditLogsFromDomain(logs []*domain.AuditLog) []*AuditLogResponse {
	result := make([]*AuditLogResponse, len(logs))
	for i, l := range logs {
		result[i] = AuditLogFromDomain(l)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
