package inventory

import (
	"context"

	"github.com/vyapari/billing-api/internal/domain/repository"
)

// TxRunner runs a function inside a DB transaction with repositories bound to
// that transaction. An error from fn rolls everything back, so a stock update
// and its ledger row commit together or not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error) error
}
