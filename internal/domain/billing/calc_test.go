package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapari/billing-api/internal/domain/billing"
	"github.com/vyapari/billing-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestLineAmount_NoDiscount(t *testing.T) {
	got := billing.LineAmount(d("1250.50"), 3, decimal.Zero)
	assert.True(t, d("3751.50").Equal(got), "3 x 1250.50 = 3751.50, got %s", got)
}

func TestLineAmount_WithDiscount(t *testing.T) {
	// 2000 * 2 * (1 - 10/100) = 3600
	got := billing.LineAmount(d("2000"), 2, d("10"))
	assert.True(t, d("3600").Equal(got), "got %s", got)
}

func TestLineAmount_FullDiscount(t *testing.T) {
	got := billing.LineAmount(d("999"), 5, d("100"))
	assert.True(t, got.IsZero(), "100%% discount must zero the line, got %s", got)
}

func TestComputeTotals_RoundOffAndZeroGST(t *testing.T) {
	items := []entity.InvoiceItem{
		{Amount: d("100.30")},
		{Amount: d("250.30")},
	}
	totals := billing.ComputeTotals(items)

	assert.True(t, d("350.60").Equal(totals.Subtotal), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.CGST.IsZero(), "CGST must be zero in the active flow")
	assert.True(t, totals.SGST.IsZero(), "SGST must be zero in the active flow")
	assert.True(t, d("351").Equal(totals.GrandTotal), "grand total %s", totals.GrandTotal)
	assert.True(t, d("0.40").Equal(totals.RoundOff), "round-off %s", totals.RoundOff)

	// Invariant: grand total = subtotal + cgst + sgst + roundOff
	recomposed := totals.Subtotal.Add(totals.CGST).Add(totals.SGST).Add(totals.RoundOff)
	assert.True(t, totals.GrandTotal.Equal(recomposed))
}

func TestComputeTotals_RoundsDown(t *testing.T) {
	totals := billing.ComputeTotals([]entity.InvoiceItem{{Amount: d("199.40")}})
	assert.True(t, d("199").Equal(totals.GrandTotal), "grand total %s", totals.GrandTotal)
	assert.True(t, d("-0.40").Equal(totals.RoundOff), "round-off %s", totals.RoundOff)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := billing.ComputeTotals(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
	assert.True(t, totals.RoundOff.IsZero())
}

func TestBalance(t *testing.T) {
	require.True(t, d("351").Equal(billing.Balance(d("1351"), d("1000"))))
	require.True(t, billing.Balance(d("500"), d("500")).IsZero(), "fully paid invoice has zero balance")
}
