package billing

import (
	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/domain/entity"
)

// ItemsPerPage is the number of line items a physical invoice page holds.
const ItemsPerPage = 10

// Page is one physical page of a printed invoice. Every page carries its own
// item subtotal and the running subtotal through that page; only the page with
// IsLast set renders the financial footer (totals, words, bank block, QR).
type Page struct {
	Number     int // 1-based
	Items      []entity.InvoiceItem
	PageTotal  decimal.Decimal // sum of this page's line amounts
	RunningSum decimal.Decimal // cumulative through this page
	IsLast     bool
}

// Paginate chunks items into pages of perPage (ItemsPerPage when perPage <= 0).
// An invoice with no items still produces a single, final page so the header
// and footer have somewhere to render.
func Paginate(items []entity.InvoiceItem, perPage int) []Page {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}

	total := len(items)
	pageCount := (total + perPage - 1) / perPage
	if pageCount == 0 {
		pageCount = 1
	}

	pages := make([]Page, 0, pageCount)
	running := decimal.Zero
	for p := 0; p < pageCount; p++ {
		start := p * perPage
		end := start + perPage
		if end > total {
			end = total
		}
		chunk := items[start:end]

		pageTotal := decimal.Zero
		for _, it := range chunk {
			pageTotal = pageTotal.Add(it.Amount)
		}
		running = running.Add(pageTotal)

		pages = append(pages, Page{
			Number:     p + 1,
			Items:      chunk,
			PageTotal:  pageTotal,
			RunningSum: running,
			IsLast:     p == pageCount-1,
		})
	}
	return pages
}
