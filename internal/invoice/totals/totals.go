// Package totals is the single place where invoice amounts are computed and
// rounded. Every totals computation in the system goes through Compute so that
// stored and rendered values can never diverge.
package totals

import "github.com/shopspring/decimal"

// Line is a quantity/rate pair contributing to an invoice.
type Line struct {
	Quantity decimal.Decimal
	Rate     decimal.Decimal
}

// Totals are the derived amounts of one invoice.
type Totals struct {
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Amount derives a line amount: round(quantity * rate, 2).
func Amount(quantity, rate decimal.Decimal) decimal.Decimal {
	return round2(quantity.Mul(rate))
}

// Compute derives subtotal, tax amount and grand total from the given lines.
// Rounding to 2 fraction digits happens at every step, not only at the end:
// the subtotal is rounded before the tax is computed from it. Changing this
// ordering changes stored values.
func Compute(lines []Line, taxPercent, pandf decimal.Decimal) Totals {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(Amount(l.Quantity, l.Rate))
	}
	subtotal := round2(sum)

	taxAmount := decimal.Zero.Round(2)
	if taxPercent.IsPositive() {
		taxAmount = round2(subtotal.Mul(taxPercent).Div(hundred))
	}

	grand := round2(subtotal.Add(taxAmount).Add(pandf))

	return Totals{
		Subtotal:   subtotal,
		TaxAmount:  taxAmount,
		GrandTotal: grand,
	}
}

// round2 rounds half-up to 2 fraction digits. Quantities and rates are
// non-negative, so half-away-from-zero and half-up coincide.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
