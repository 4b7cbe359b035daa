// Package billing holds the arithmetic shared by stands, purchases and
// invoices. Amounts are exact decimals and nothing here rounds: rounding to
// two places only happens when a document is printed.
package billing

import "github.com/shopspring/decimal"

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

var (
	hundred = decimal.NewFromInt(100)

	// DefaultTaxRate is the TVA percentage applied when none is given.
	DefaultTaxRate = decimal.NewFromInt(19)
	// DefaultFactor is the neutral item and product factor.
	DefaultFactor = decimal.NewFromInt(1)
)

// LineTotal returns unitPrice × quantity × (days when perDay) × factor.
func LineTotal(unitPrice decimal.Decimal, quantity, days int, perDay bool, factor decimal.Decimal) decimal.Decimal {
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if perDay {
		total = total.Mul(decimal.NewFromInt(int64(days)))
	}
	return total.Mul(factor)
}

// Sum adds up line totals.
func Sum(lines []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l)
	}
	return total
}

// Input describes one invoice calculation. TaxRate and FiscalStamp must
// already carry their defaults.
type Input struct {
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	DiscountType string
	TaxRate      decimal.Decimal
	FiscalStamp  decimal.Decimal
}

// Totals is the result of Compute.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalHT        decimal.Decimal
	TVAAmount      decimal.Decimal
	TotalTTC       decimal.Decimal
}

// Compute applies the discount, tax and fiscal stamp to a subtotal.
// A discount is only applied when positive, and it is not clamped: a fixed
// discount larger than the subtotal yields a negative HT.
func Compute(in Input) Totals {
	t := Totals{Subtotal: in.Subtotal, DiscountAmount: decimal.Zero, TotalHT: in.Subtotal}
	if in.Discount.IsPositive() {
		if in.DiscountType == DiscountPercentage {
			t.DiscountAmount = in.Subtotal.Mul(in.Discount).Div(hundred)
		} else {
			t.DiscountAmount = in.Discount
		}
		t.TotalHT = in.Subtotal.Sub(t.DiscountAmount)
	}
	t.TVAAmount = t.TotalHT.Mul(in.TaxRate).Div(hundred)
	t.TotalTTC = t.TotalHT.Add(t.TVAAmount).Add(in.FiscalStamp)
	return t
}

// NormalizeDiscountType maps anything but "fixed" to percentage.
func NormalizeDiscountType(s string) string {
	if s == DiscountFixed {
		return DiscountFixed
	}
	return DiscountPercentage
}
