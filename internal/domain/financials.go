package domain

import "github.com/shopspring/decimal"

// Pricing constants. The volumetric divisor converts cm³ to a dimensional
// weight in kg; IPOSTEL is only withheld on freight for parcels whose per-unit
// chargeable weight does not exceed 30.99 kg.
var (
	volumetricDivisor = decimal.NewFromInt(5000)
	handlingFee       = decimal.NewFromInt(10)
	ipostelRate       = decimal.NewFromFloat(0.06)
	ipostelMaxWeight  = decimal.NewFromFloat(30.99)
	igtfRate          = decimal.NewFromFloat(0.03)
	oneHundred        = decimal.NewFromInt(100)
)

// Financials is the derived, immutable charge breakdown of a guide. All
// amounts are VES and non-negative. Never persisted; recomputed on demand.
type Financials struct {
	Freight       decimal.Decimal
	InsuranceCost decimal.Decimal
	Handling      decimal.Decimal
	Discount      decimal.Decimal
	Subtotal      decimal.Decimal
	Ipostel       decimal.Decimal
	IVA           decimal.Decimal
	IGTF          decimal.Decimal
	Total         decimal.Decimal
}

// ZeroFinancials is returned for nil guides and empty merchandise lists so the
// caller always has numbers to show.
func ZeroFinancials() Financials {
	return Financials{
		Freight:       decimal.Zero,
		InsuranceCost: decimal.Zero,
		Handling:      decimal.Zero,
		Discount:      decimal.Zero,
		Subtotal:      decimal.Zero,
		Ipostel:       decimal.Zero,
		IVA:           decimal.Zero,
		IGTF:          decimal.Zero,
		Total:         decimal.Zero,
	}
}

// sanitize normalizes a numeric input the way the billing forms expect:
// anything that is not a usable positive number becomes zero. This is a
// deliberate availability-over-signaling choice so a half-typed form still
// renders a total.
func sanitize(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// sanitizeQuantity defaults unset or non-positive quantities to one unit.
func sanitizeQuantity(q decimal.Decimal) decimal.Decimal {
	if !q.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return q
}

// ChargeableWeightPerUnit returns max(real weight, volumetric weight) for a
// single unit of the item. Volumetric weight is L×W×H/5000, exact.
func (m MerchandiseItem) ChargeableWeightPerUnit() decimal.Decimal {
	real := sanitize(m.Weight)
	volumetric := sanitize(m.Length).
		Mul(sanitize(m.Width)).
		Mul(sanitize(m.Height)).
		Div(volumetricDivisor)
	if real.GreaterThanOrEqual(volumetric) {
		return real
	}
	return volumetric
}

// ChargeableWeight sums per-unit chargeable weight times quantity over the
// whole merchandise list.
func (g *ShippingGuide) ChargeableWeight() decimal.Decimal {
	if g == nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, item := range g.Merchandise {
		total = total.Add(item.ChargeableWeightPerUnit().Mul(sanitizeQuantity(item.Quantity)))
	}
	return total
}

// CalculateFinancials derives the full charge breakdown for a guide against a
// company configuration. Pure and deterministic; it never fails, it degrades
// to zeros instead.
func CalculateFinancials(guide *ShippingGuide, company CompanyInfo) Financials {
	if guide == nil || len(guide.Merchandise) == 0 {
		return ZeroFinancials()
	}

	costPerKg := sanitize(company.CostPerKg)
	totalWeight := guide.ChargeableWeight()
	freight := totalWeight.Mul(costPerKg)

	discount := decimal.Zero
	if guide.HasDiscount {
		discount = freight.Mul(sanitize(guide.DiscountPercentage).Div(oneHundred))
	}
	freightAfterDiscount := freight.Sub(discount)

	insurance := decimal.Zero
	if guide.HasInsurance {
		insurance = sanitize(guide.DeclaredValue).Mul(sanitize(guide.InsurancePercentage).Div(oneHundred))
	}

	handling := decimal.Zero
	if totalWeight.IsPositive() {
		handling = handlingFee
	}

	subtotal := freightAfterDiscount.Add(insurance).Add(handling)

	// IPOSTEL base: per-item freight, light parcels only.
	freightForIpostel := decimal.Zero
	for _, item := range guide.Merchandise {
		perUnit := item.ChargeableWeightPerUnit()
		if perUnit.IsPositive() && perUnit.LessThanOrEqual(ipostelMaxWeight) {
			itemFreight := perUnit.Mul(costPerKg).Mul(sanitizeQuantity(item.Quantity))
			freightForIpostel = freightForIpostel.Add(itemFreight)
		}
	}
	ipostel := freightForIpostel.Mul(ipostelRate)

	// The cooperative is IVA-exempt.
	iva := decimal.Zero

	preIgtf := subtotal.Add(ipostel).Add(iva)

	igtf := decimal.Zero
	if guide.PaymentCurrency == CurrencyUSD {
		igtf = preIgtf.Mul(igtfRate)
	}

	return Financials{
		Freight:       freight,
		InsuranceCost: insurance,
		Handling:      handling,
		Discount:      discount,
		Subtotal:      subtotal,
		Ipostel:       ipostel,
		IVA:           iva,
		IGTF:          igtf,
		Total:         preIgtf.Add(igtf),
	}
}
