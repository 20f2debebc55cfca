// Package billing holds the pure invoice math: line amounts, totals and
// round-off, the daily invoice-number sequence, amount-in-words rendering and
// the fixed-size page split used by the PDF layout. Everything here is
// deterministic and free of I/O so it can be tested against exact vectors.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineAmount returns rate × qty × (1 − discountPct/100).
func LineAmount(rate decimal.Decimal, qty int64, discountPct decimal.Decimal) decimal.Decimal {
	gross := rate.Mul(decimal.NewFromInt(qty))
	if discountPct.IsZero() {
		return gross
	}
	return gross.Mul(decimal.NewFromInt(1).Sub(discountPct.Div(hundred)))
}

// Totals is the financial footer of an invoice.
type Totals struct {
	Subtotal   decimal.Decimal
	CGST       decimal.Decimal
	SGST       decimal.Decimal
	RoundOff   decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals sums the line amounts and derives the grand total rounded to
// the nearest rupee. CGST and SGST are produced as zero: the tax columns stay
// in the model but the active flow does not apply GST. The round-off keeps the
// full formula so enabling tax later only changes the two tax terms.
func ComputeTotals(items []entity.InvoiceItem) Totals {
	var subtotal decimal.Decimal
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	cgst := decimal.Zero
	sgst := decimal.Zero

	taxed := subtotal.Add(cgst).Add(sgst)
	grand := taxed.Round(0)
	return Totals{
		Subtotal:   subtotal,
		CGST:       cgst,
		SGST:       sgst,
		RoundOff:   grand.Sub(taxed),
		GrandTotal: grand,
	}
}

// Balance returns grandTotal − paidAmount.
func Balance(grandTotal, paidAmount decimal.Decimal) decimal.Decimal {
	return grandTotal.Sub(paidAmount)
}
