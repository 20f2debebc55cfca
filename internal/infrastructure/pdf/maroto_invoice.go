// Package pdf renders the printable invoice with Maroto v2.
//
// A4 page layout, repeated per page:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Shop name + GSTIN  │  TAX INVOICE, No + Date        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: customer name + phone + GSTIN                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: S.No | Item | HSN | Qty | Rate | Disc% | Amount      │
//	│  Page subtotal / running subtotal, "Page N of M"             │
//	└─────────────────────────────────────────────────────────────┘
//
// Only the last page carries the financial footer: totals with round-off,
// amount in words, bank details, the UPI payment QR and the signature block.
package pdf

import (
	"context"
	"fmt"
	"net/url"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/vyapari/billing-api/internal/application/billing"
	"github.com/vyapari/billing-api/internal/domain/billing"
	"github.com/vyapari/billing-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoInvoiceGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoInvoiceGenerator struct{}

func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes. Items are
// split into fixed-size pages; each page repeats the header and the bill-to
// block and shows its own subtotal plus the running subtotal.
func (g *MarotoInvoiceGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
	items []entity.InvoiceItem,
	seller appbilling.SellerProfile,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(seller.Name, true).
		Build()

	m := maroto.New(cfg)

	pages := billing.Paginate(items, billing.ItemsPerPage)
	for _, pg := range pages {
		p := page.New()
		p.Add(headerRow(invoice, seller, pg.Number, len(pages)))
		p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
		p.Add(billToRow(customer))
		p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		p.Add(tableHeaderRow())
		p.Add(tableItemRows((pg.Number-1)*billing.ItemsPerPage, pg.Items)...)
		p.Add(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		p.Add(pageTotalsRow(pg))

		if pg.IsLast {
			p.Add(line.NewRow(2))
			p.Add(totalsRow(invoice))
			p.Add(wordsRow(invoice.GrandTotal))
			p.Add(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
			p.Add(footerRows(invoice, seller)...)
		}
		m.AddPages(p)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: shop name + GSTIN on the left, invoice number + date + page
// marker on the right.
func headerRow(invoice *entity.Invoice, seller appbilling.SellerProfile, pageNum, pageCount int) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(seller.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(seller.Address, props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
			text.New(fmt.Sprintf("GSTIN: %s   |   Ph: %s", nonEmpty(seller.GSTIN, "—"), nonEmpty(seller.Phone, "—")), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TAX INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+invoice.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Page %d of %d", pageNum, pageCount), props.Text{
				Size: 7, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// billToRow: buyer block, repeated on every page.
func billToRow(customer *entity.Customer) core.Row {
	contact := fmt.Sprintf("Ph: %s", nonEmpty(customer.Phone, "—"))
	if customer.GSTIN != "" {
		contact += "   |   GSTIN: " + customer.GSTIN
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("S.No", 1, align.Center),
		h("Item", 4, align.Left),
		h("HSN", 1, align.Center),
		h("Qty", 1, align.Right),
		h("Rate", 2, align.Right),
		h("Disc%", 1, align.Right),
		h("Amount", 2, align.Right),
	)
}

// tableItemRows: one row per line item. offset carries the serial number
// across pages so numbering continues from the previous page.
func tableItemRows(offset int, items []entity.InvoiceItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", offset+i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(it.HSNCode, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+formatINR(it.Rate.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				it.DiscountPct.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"₹"+formatINR(it.Amount.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// pageTotalsRow: this page's subtotal and the running subtotal through it.
func pageTotalsRow(pg billing.Page) core.Row {
	return row.New(7).Add(
		col.New(6),
		col.New(3).Add(text.New(
			"Page Subtotal: ₹"+formatINR(pg.PageTotal.StringFixed(2)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(3).Add(text.New(
			"Running: ₹"+formatINR(pg.RunningSum.StringFixed(2)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray},
		)),
	)
}

// totalsRow: financial footer, last page only.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(40).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:"),
			label("CGST:"),
			label("SGST:"),
			label("Round Off:"),
			text.New("GRAND TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 28,
			}),
		),
		col.New(3).Add(
			value("₹"+formatINR(invoice.Subtotal.StringFixed(2))),
			value("₹"+formatINR(invoice.CGST.StringFixed(2))),
			value("₹"+formatINR(invoice.SGST.StringFixed(2))),
			value(formatINR(invoice.RoundOff.StringFixed(2))),
			text.New("₹"+formatINR(invoice.GrandTotal.StringFixed(2)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 28,
			}),
		),
	)
}

func wordsRow(grandTotal decimal.Decimal) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(billing.AmountInWords(grandTotal), props.Text{
			Style: fontstyle.BoldItalic, Size: 8, Top: 2,
		}),
	))
}

// footerRows: bank details, UPI QR and signature block, last page only.
func footerRows(invoice *entity.Invoice, seller appbilling.SellerProfile) []core.Row {
	rows := []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New("BANK DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   A/C: %s   |   IFSC: %s",
				nonEmpty(seller.BankName, "—"),
				nonEmpty(seller.BankAccount, "—"),
				nonEmpty(seller.BankIFSC, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		)),
	}

	if seller.UPIID != "" {
		rows = append(rows, row.New(40).Add(
			col.New(4).Add(code.NewQr(upiPaymentURI(seller, invoice.Balance), props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Scan to pay via UPI", props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 6, Left: 3, Color: colorPrimary,
				}),
				text.New(seller.UPIID, props.Text{
					Size: 8, Top: 13, Left: 3, Color: colorGray,
				}),
				text.New("For "+seller.Name, props.Text{
					Size: 8, Top: 26, Left: 3,
				}),
				text.New("Authorised Signatory", props.Text{
					Size: 8, Top: 34, Left: 3, Color: colorGray,
				}),
			),
		))
	} else {
		rows = append(rows, row.New(24).Add(
			col.New(8),
			col.New(4).Add(
				text.New("For "+seller.Name, props.Text{
					Size: 8, Align: align.Right, Top: 4,
				}),
				text.New("Authorised Signatory", props.Text{
					Size: 8, Align: align.Right, Top: 16, Color: colorGray,
				}),
			),
		))
	}

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("Goods once sold are not returnable. Subject to local jurisdiction.", props.Text{
			Size: 6.5, Color: colorGray, Top: 2,
		}),
	)))
	return rows
}

// upiPaymentURI builds the upi://pay deep link the QR encodes. The amount is
// the outstanding balance; a fully paid invoice encodes zero and the UPI app
// asks the payer for the amount.
func upiPaymentURI(seller appbilling.SellerProfile, amount decimal.Decimal) string {
	v := url.Values{}
	v.Set("pa", seller.UPIID)
	v.Set("pn", seller.Name)
	if amount.IsPositive() {
		v.Set("am", amount.StringFixed(2))
	}
	v.Set("cu", "INR")
	return "upi://pay?" + v.Encode()
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatINR inserts Indian-system thousand separators into a decimal string:
// the last three integer digits form one group, then pairs of two.
// "1234567.00" -> "12,34,567.00"
func formatINR(s string) string {
	intPart := s
	frac := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	neg := ""
	if len(intPart) > 0 && intPart[0] == '-' {
		neg, intPart = "-", intPart[1:]
	}

	n := len(intPart)
	if n <= 3 {
		return neg + intPart + frac
	}
	// Positions needing a comma before them: the last 3 digits, then every 2.
	buf := make([]byte, 0, n+n/2)
	lead := (n - 3) % 2
	if lead == 0 {
		lead = 2
	}
	buf = append(buf, intPart[:lead]...)
	for i := lead; i < n-3; i += 2 {
		buf = append(buf, ',')
		buf = append(buf, intPart[i:i+2]...)
	}
	buf = append(buf, ',')
	buf = append(buf, intPart[n-3:]...)
	return neg + string(buf) + frac
}
