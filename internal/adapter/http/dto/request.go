package dto

import (
	"bytes"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coopfletes/backoffice/internal/domain"
	"github.com/coopfletes/backoffice/internal/usecase"
)

// Amount is a lenient JSON number. The billing forms submit whatever the
// operator typed, so null, empty strings, and garbage all decode to zero
// instead of rejecting the whole request body.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON decodes a JSON number or numeric string, coercing anything
// else to zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		a.Decimal = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// PartyRequest represents a sender or receiver on a guide.
type PartyRequest struct {
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Type     string `json:"type"`
}

func (r PartyRequest) toDomain() domain.Party {
	return domain.Party{
		Name:     r.Name,
		IDNumber: r.IDNumber,
		Phone:    r.Phone,
		Address:  r.Address,
		Type:     r.Type,
	}
}

// MerchandiseItemRequest represents one cargo line of a guide.
type MerchandiseItemRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    Amount `json:"quantity"`
	Weight      Amount `json:"weight"`
	Length      Amount `json:"length"`
	Width       Amount `json:"width"`
	Height      Amount `json:"height"`
}

// GuideRequest represents a shipping guide in request bodies.
type GuideRequest struct {
	Sender              PartyRequest             `json:"sender"`
	Receiver            PartyRequest             `json:"receiver"`
	Merchandise         []MerchandiseItemRequest `json:"merchandise"`
	OriginOfficeID      string                   `json:"origin_office_id"`
	DestinationOfficeID string                   `json:"destination_office_id"`
	ShippingTypeID      string                   `json:"shipping_type_id"`
	PaymentMethodID     string                   `json:"payment_method_id"`
	PaymentType         string                   `json:"payment_type"`
	PaymentCurrency     string                   `json:"payment_currency"`
	HasInsurance        bool                     `json:"has_insurance"`
	DeclaredValue       Amount                   `json:"declared_value"`
	InsurancePercentage Amount                   `json:"insurance_percentage"`
	HasDiscount         bool                     `json:"has_discount"`
	DiscountPercentage  Amount                   `json:"discount_percentage"`
	Date                *time.Time               `json:"date,omitempty"`
}

// ToDomain converts to a domain guide.
func (r *GuideRequest) ToDomain() domain.ShippingGuide {
	items := make([]domain.MerchandiseItem, len(r.Merchandise))
	for i, m := range r.Merchandise {
		items[i] = domain.MerchandiseItem{
			Description: m.Description,
			Category:    m.Category,
			Quantity:    m.Quantity.Decimal,
			Weight:      m.Weight.Decimal,
			Length:      m.Length.Decimal,
			Width:       m.Width.Decimal,
			Height:      m.Height.Decimal,
		}
	}
	guide := domain.ShippingGuide{
		Sender:              r.Sender.toDomain(),
		Receiver:            r.Receiver.toDomain(),
		Merchandise:         items,
		OriginOfficeID:      r.OriginOfficeID,
		DestinationOfficeID: r.DestinationOfficeID,
		ShippingTypeID:      r.ShippingTypeID,
		PaymentMethodID:     r.PaymentMethodID,
		PaymentType:         domain.PaymentType(r.PaymentType),
		PaymentCurrency:     domain.Currency(r.PaymentCurrency),
		HasInsurance:        r.HasInsurance,
		DeclaredValue:       r.DeclaredValue.Decimal,
		InsurancePercentage: r.InsurancePercentage.Decimal,
		HasDiscount:         r.HasDiscount,
		DiscountPercentage:  r.DiscountPercentage.Decimal,
	}
	if r.Date != nil {
		guide.Date = *r.Date
	}
	return guide
}

// CreateInvoiceRequest represents a request to bill a guide.
type CreateInvoiceRequest struct {
	ClientID      string       `json:"client_id"`
	ClientName    string       `json:"client_name"`
	ControlNumber string       `json:"control_number"`
	Guide         GuideRequest `json:"guide"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateInvoiceRequest) ToUseCaseInput(userID string) usecase.CreateInvoiceInput {
	return usecase.CreateInvoiceInput{
		ClientID:      r.ClientID,
		ClientName:    r.ClientName,
		ControlNumber: r.ControlNumber,
		Guide:         r.Guide.ToDomain(),
		UserID:        userID,
	}
}

// UpdateInvoiceRequest represents a request to edit a live invoice's guide.
type UpdateInvoiceRequest struct {
	ClientID   string       `json:"client_id"`
	ClientName string       `json:"client_name"`
	Guide      GuideRequest `json:"guide"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateInvoiceRequest) ToUseCaseInput(id, userID string) usecase.UpdateInvoiceInput {
	return usecase.UpdateInvoiceInput{
		ID:         id,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Guide:      r.Guide.ToDomain(),
		UserID:     userID,
	}
}

// UpdateInvoiceStatusRequest represents a partial status transition. Omitted
// fields are left untouched.
type UpdateInvoiceStatusRequest struct {
	Status         *string `json:"status,omitempty"`
	PaymentStatus  *string `json:"payment_status,omitempty"`
	ShippingStatus *string `json:"shipping_status,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateInvoiceStatusRequest) ToUseCaseInput(id, userID string) usecase.UpdateStatusesInput {
	input := usecase.UpdateStatusesInput{ID: id, UserID: userID}
	if r.Status != nil {
		s := domain.MasterStatus(*r.Status)
		input.Status = &s
	}
	if r.PaymentStatus != nil {
		s := domain.PaymentStatus(*r.PaymentStatus)
		input.PaymentStatus = &s
	}
	if r.ShippingStatus != nil {
		s := domain.ShippingStatus(*r.ShippingStatus)
		input.ShippingStatus = &s
	}
	return input
}

// ExpenseRequest represents an expense in create and update request bodies.
type ExpenseRequest struct {
	Date            *time.Time `json:"date,omitempty"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Amount          Amount     `json:"amount"`
	TaxableBase     Amount     `json:"taxable_base"`
	VATAmount       Amount     `json:"vat_amount"`
	Status          string     `json:"status,omitempty"`
	PaymentMethodID string     `json:"payment_method_id"`
	OfficeID        string     `json:"office_id"`
	SupplierName    string     `json:"supplier_name"`
	SupplierRIF     string     `json:"supplier_rif"`
	InvoiceNumber   string     `json:"invoice_number"`
	ControlNumber   string     `json:"control_number"`
}

// ToDomain converts to a domain expense.
func (r *ExpenseRequest) ToDomain() domain.Expense {
	expense := domain.Expense{
		Description:     r.Description,
		Category:        r.Category,
		Amount:          r.Amount.Decimal,
		TaxableBase:     r.TaxableBase.Decimal,
		VATAmount:       r.VATAmount.Decimal,
		Status:          domain.ExpenseStatus(r.Status),
		PaymentMethodID: r.PaymentMethodID,
		OfficeID:        r.OfficeID,
		SupplierName:    r.SupplierName,
		SupplierRIF:     r.SupplierRIF,
		InvoiceNumber:   r.InvoiceNumber,
		ControlNumber:   r.ControlNumber,
	}
	if r.Date != nil {
		expense.Date = *r.Date
	}
	return expense
}

// AsientoEntryRequest represents one line of a manual journal entry.
type AsientoEntryRequest struct {
	CuentaID string `json:"cuenta_id"`
	Debe     Amount `json:"debe"`
	Haber    Amount `json:"haber"`
}

// CreateAsientoRequest represents a request to record a manual journal entry.
type CreateAsientoRequest struct {
	Fecha       *time.Time            `json:"fecha,omitempty"`
	Descripcion string                `json:"descripcion"`
	Entries     []AsientoEntryRequest `json:"entries"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAsientoRequest) ToUseCaseInput(userID string) usecase.CreateAsientoInput {
	entries := make([]domain.AsientoManualEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.AsientoManualEntry{
			CuentaID: e.CuentaID,
			Debe:     e.Debe.Decimal,
			Haber:    e.Haber.Decimal,
		}
	}
	asiento := domain.AsientoManual{
		Descripcion: r.Descripcion,
		Entries:     entries,
	}
	if r.Fecha != nil {
		asiento.Fecha = *r.Fecha
	}
	return usecase.CreateAsientoInput{Asiento: asiento, UserID: userID}
}

// CuentaRequest represents a chart-of-accounts entry in request bodies.
type CuentaRequest struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
}

// ClientRequest represents a client in request bodies.
type ClientRequest struct {
	Name     string `json:"name"`
	IDNumber string `json:"id_number"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Type     string `json:"type"`
}

// ToDomain converts to a domain client.
func (r *ClientRequest) ToDomain() domain.Client {
	return domain.Client{
		Name:     r.Name,
		IDNumber: r.IDNumber,
		Phone:    r.Phone,
		Address:  r.Address,
		Type:     r.Type,
	}
}

// SupplierRequest represents a supplier in request bodies.
type SupplierRequest struct {
	Name    string `json:"name"`
	RIF     string `json:"rif"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToDomain converts to a domain supplier.
func (r *SupplierRequest) ToDomain() domain.Supplier {
	return domain.Supplier{
		Name:    r.Name,
		RIF:     r.RIF,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// VehicleRequest represents a vehicle in request bodies.
type VehicleRequest struct {
	Placa      string `json:"placa"`
	Modelo     string `json:"modelo"`
	Capacity   string `json:"capacity"`
	AsociadoID string `json:"asociado_id"`
}

// ToDomain converts to a domain vehicle.
func (r *VehicleRequest) ToDomain() domain.Vehicle {
	return domain.Vehicle{
		Placa:      r.Placa,
		Modelo:     r.Modelo,
		Capacity:   r.Capacity,
		AsociadoID: r.AsociadoID,
	}
}

// AsociadoRequest represents a cooperative member in request bodies.
type AsociadoRequest struct {
	Codigo  string `json:"codigo"`
	Nombre  string `json:"nombre"`
	Cedula  string `json:"cedula"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ToDomain converts to a domain asociado.
func (r *AsociadoRequest) ToDomain() domain.Asociado {
	return domain.Asociado{
		Codigo:  r.Codigo,
		Nombre:  r.Nombre,
		Cedula:  r.Cedula,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// PagoAsociadoRequest represents a member charge in request bodies.
type PagoAsociadoRequest struct {
	Concepto         string     `json:"concepto"`
	Cuotas           string     `json:"cuotas"`
	MontoBs          Amount     `json:"monto_bs"`
	MontoUsd         Amount     `json:"monto_usd"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento,omitempty"`
	Status           string     `json:"status,omitempty"`
}

// ToDomain converts to a domain member charge.
func (r *PagoAsociadoRequest) ToDomain() domain.PagoAsociado {
	pago := domain.PagoAsociado{
		Concepto: r.Concepto,
		Cuotas:   r.Cuotas,
		MontoBs:  r.MontoBs.Decimal,
		MontoUsd: r.MontoUsd.Decimal,
		Status:   domain.PagoAsociadoStatus(r.Status),
	}
	if r.FechaVencimiento != nil {
		pago.FechaVencimiento = *r.FechaVencimiento
	}
	return pago
}

// AssignInvoiceRequest represents a request to load an invoice onto a vehicle.
type AssignInvoiceRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// CompanyRequest represents the company configuration in request bodies.
type CompanyRequest struct {
	Name      string `json:"name"`
	RIF       string `json:"rif"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	CostPerKg Amount `json:"cost_per_kg"`
	BCVRate   Amount `json:"bcv_rate"`
}

// ToDomain converts to the domain company configuration.
func (r *CompanyRequest) ToDomain() domain.CompanyInfo {
	return domain.CompanyInfo{
		Name:      r.Name,
		RIF:       r.RIF,
		Address:   r.Address,
		Phone:     r.Phone,
		CostPerKg: r.CostPerKg.Decimal,
		BCVRate:   r.BCVRate.Decimal,
	}
}
