package repository

import "github.com/vyapari/billing-api/internal/domain/entity"

// ProductRepository persistence port for catalog products.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate loads the product and locks the row (SELECT FOR UPDATE);
	// valid only inside a transaction.
	GetForUpdate(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// ListLowStock returns active products with stock <= min_stock.
	ListLowStock() ([]*entity.Product, error)
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock writes only the stock column; called with the row already locked.
	UpdateStock(productID string, newStock int64) error
	Delete(id string) error
}
