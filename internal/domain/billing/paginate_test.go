package billing_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyapari/billing-api/internal/domain/billing"
	"github.com/vyapari/billing-api/internal/domain/entity"
)

func makeItems(n int) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, entity.InvoiceItem{
			ProductName: fmt.Sprintf("Item %d", i+1),
			Quantity:    1,
			Rate:        decimal.NewFromInt(100),
			Amount:      decimal.NewFromInt(100),
		})
	}
	return items
}

func TestPaginate_23ItemsThreePages(t *testing.T) {
	pages := billing.Paginate(makeItems(23), 10)

	require.Len(t, pages, 3)
	assert.Len(t, pages[0].Items, 10)
	assert.Len(t, pages[1].Items, 10)
	assert.Len(t, pages[2].Items, 3)

	// Only the last page renders the financial footer.
	assert.False(t, pages[0].IsLast)
	assert.False(t, pages[1].IsLast)
	assert.True(t, pages[2].IsLast)
}

func TestPaginate_PageAndRunningTotals(t *testing.T) {
	pages := billing.Paginate(makeItems(23), 10)

	require.Len(t, pages, 3)
	assert.True(t, decimal.NewFromInt(1000).Equal(pages[0].PageTotal))
	assert.True(t, decimal.NewFromInt(1000).Equal(pages[0].RunningSum))
	assert.True(t, decimal.NewFromInt(2000).Equal(pages[1].RunningSum))
	assert.True(t, decimal.NewFromInt(300).Equal(pages[2].PageTotal))
	assert.True(t, decimal.NewFromInt(2300).Equal(pages[2].RunningSum))
}

func TestPaginate_ExactMultiple(t *testing.T) {
	pages := billing.Paginate(makeItems(20), 10)
	require.Len(t, pages, 2)
	assert.Len(t, pages[1].Items, 10)
	assert.True(t, pages[1].IsLast)
}

func TestPaginate_SinglePartialPage(t *testing.T) {
	pages := billing.Paginate(makeItems(4), 10)
	require.Len(t, pages, 1)
	assert.True(t, pages[0].IsLast)
	assert.Equal(t, 1, pages[0].Number)
}

func TestPaginate_NoItemsStillOnePage(t *testing.T) {
	pages := billing.Paginate(nil, 10)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].Items)
	assert.True(t, pages[0].IsLast)
	assert.True(t, pages[0].PageTotal.IsZero())
}

func TestPaginate_DefaultPageSize(t *testing.T) {
	pages := billing.Paginate(makeItems(11), 0)
	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Items, billing.ItemsPerPage)
}
