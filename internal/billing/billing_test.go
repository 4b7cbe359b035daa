package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute_PercentageDiscountWithStamp(t *testing.T) {
	got := Compute(Input{
		Subtotal:     d("1000"),
		Discount:     d("10"),
		DiscountType: DiscountPercentage,
		TaxRate:      d("19"),
		FiscalStamp:  d("1"),
	})

	assert.True(t, got.DiscountAmount.Equal(d("100")))
	assert.True(t, got.TotalHT.Equal(d("900")), got.TotalHT.String())
	assert.True(t, got.TVAAmount.Equal(d("171")), got.TVAAmount.String())
	assert.True(t, got.TotalTTC.Equal(d("1072")), got.TotalTTC.String())
}

func TestCompute_FixedDiscountDefaultRate(t *testing.T) {
	got := Compute(Input{
		Subtotal:     d("500"),
		Discount:     d("50"),
		DiscountType: DiscountFixed,
		TaxRate:      DefaultTaxRate,
		FiscalStamp:  decimal.Zero,
	})

	assert.True(t, got.TotalHT.Equal(d("450")))
	assert.True(t, got.TVAAmount.Equal(d("85.5")))
	assert.True(t, got.TotalTTC.Equal(d("535.5")))
}

func TestCompute_NoDiscount(t *testing.T) {
	got := Compute(Input{Subtotal: d("200"), DiscountType: DiscountPercentage, TaxRate: d("0"), FiscalStamp: d("0.6")})

	assert.True(t, got.TotalHT.Equal(d("200")))
	assert.True(t, got.TVAAmount.IsZero())
	assert.True(t, got.TotalTTC.Equal(d("200.6")))
}

func TestCompute_DiscountLargerThanSubtotalIsNotClamped(t *testing.T) {
	got := Compute(Input{Subtotal: d("100"), Discount: d("150"), DiscountType: DiscountFixed, TaxRate: d("19")})

	assert.True(t, got.TotalHT.Equal(d("-50")))
	assert.True(t, got.TVAAmount.Equal(d("-9.5")))
	assert.True(t, got.TotalTTC.Equal(d("-59.5")))
}

func TestCompute_NoRounding(t *testing.T) {
	got := Compute(Input{Subtotal: d("10.005"), DiscountType: DiscountPercentage, TaxRate: d("19")})

	assert.Equal(t, "1.90095", got.TVAAmount.String())
	assert.Equal(t, "11.90595", got.TotalTTC.String())
}

func TestLineTotal(t *testing.T) {
	cases := []struct {
		name   string
		price  string
		qty    int
		days   int
		perDay bool
		factor string
		want   string
	}{
		{"per day uses days", "50", 2, 3, true, "1", "300"},
		{"flat ignores days", "50", 2, 3, false, "1", "100"},
		{"factor applies", "40", 1, 2, true, "1.5", "120"},
		{"zero quantity", "40", 0, 2, true, "1", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LineTotal(d(tc.price), tc.qty, tc.days, tc.perDay, d(tc.factor))
			assert.True(t, got.Equal(d(tc.want)), "got %s", got)
		})
	}
}

func TestSum(t *testing.T) {
	assert.True(t, Sum([]decimal.Decimal{d("1.5"), d("2.25"), d("-0.75")}).Equal(d("3")))
	assert.True(t, Sum(nil).IsZero())
}

func TestNormalizeDiscountType(t *testing.T) {
	assert.Equal(t, DiscountFixed, NormalizeDiscountType("fixed"))
	assert.Equal(t, DiscountPercentage, NormalizeDiscountType(""))
	assert.Equal(t, DiscountPercentage, NormalizeDiscountType("percentage"))
}
