package dto

import (
	"encoding/json"
	"testing"

	"github.com/coopfletes/backoffice/internal/domain"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "number", in: `12.5`, want: "12.5"},
		{name: "quoted number", in: `"7.25"`, want: "7.25"},
		{name: "null", in: `null`, want: "0"},
		{name: "empty string", in: `""`, want: "0"},
		{name: "garbage string", in: `"abc"`, want: "0"},
		{name: "boolean", in: `true`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			if err := json.Unmarshal([]byte(tt.in), &a); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if a.String() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, a.String())
			}
		})
	}
}

func TestGuideRequest_ToDomain(t *testing.T) {
	payload := `{
		"sender": {"name": "Pedro Rojas", "id_number": "V-11222333"},
		"receiver": {"name": "Ana Díaz"},
		"payment_method_id": "pm-1",
		"payment_type": "flete-pagado",
		"payment_currency": "USD",
		"has_insurance": true,
		"declared_value": 1000,
		"insurance_percentage": "2",
		"merchandise": [
			{"description": "Caja", "quantity": 2, "weight": "10", "length": null}
		]
	}`

	var req GuideRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("failed to decode guide: %v", err)
	}

	guide := req.ToDomain()
	if guide.PaymentCurrency != domain.CurrencyUSD {
		t.Fatalf("expected USD, got %s", guide.PaymentCurrency)
	}
	if guide.Sender.Name != "Pedro Rojas" {
		t.Fatalf("expected sender name to survive, got %s", guide.Sender.Name)
	}
	if len(guide.Merchandise) != 1 {
		t.Fatalf("expected one item, got %d", len(guide.Merchandise))
	}
	item := guide.Merchandise[0]
	if item.Quantity.String() != "2" || item.Weight.String() != "10" {
		t.Fatalf("expected quantity 2 weight 10, got %s/%s", item.Quantity, item.Weight)
	}
	if !item.Length.IsZero() {
		t.Fatalf("expected null length to coerce to zero, got %s", item.Length)
	}
	if guide.DeclaredValue.String() != "1000" || guide.InsurancePercentage.String() != "2" {
		t.Fatalf("expected insurance inputs to decode, got %s/%s", guide.DeclaredValue, guide.InsurancePercentage)
	}
}

func TestUpdateInvoiceStatusRequest_PartialFields(t *testing.T) {
	var req UpdateInvoiceStatusRequest
	if err := json.Unmarshal([]byte(`{"payment_status":"Pagada"}`), &req); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	input := req.ToUseCaseInput("inv-1", "operator-1")
	if input.Status != nil || input.ShippingStatus != nil {
		t.Fatal("expected omitted statuses to stay nil")
	}
	if input.PaymentStatus == nil || *input.PaymentStatus != domain.PaymentStatusPagada {
		t.Fatalf("expected payment status Pagada, got %v", input.PaymentStatus)
	}
}
