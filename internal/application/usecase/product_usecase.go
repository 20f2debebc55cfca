package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
)

// ProductUseCase catalog CRUD. Stock is only set here at creation (opening
// stock); every later change goes through inventory movements.
type ProductUseCase struct {
	repo          repository.ProductRepository
	defaultBranch string
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, defaultBranch string) *ProductUseCase {
	return &ProductUseCase{repo: repo, defaultBranch: defaultBranch}
}

// Create creates a product with its opening stock.
func (uc *ProductUseCase) Create(createdBy string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.LessThan(decimal.Zero) || in.GSTRate.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		in.Unit = "pcs"
	}
	branch := in.Branch
	if branch == "" {
		branch = uc.defaultBranch
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Brand:        in.Brand,
		Category:     in.Category,
		Price:        in.Price,
		Stock:        in.Stock,
		MinStock:     in.MinStock,
		Unit:         in.Unit,
		Status:       entity.ProductStatusActive,
		GSTRate:      in.GSTRate,
		HSNCode:      in.HSNCode,
		SerialNumber: in.SerialNumber,
		Warranty:     in.Warranty,
		Model:        in.Model,
		Branch:       branch,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns a product by ID, nil when absent.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update patches catalog fields. Stock is not updatable here.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.GSTRate != nil {
		product.GSTRate = *in.GSTRate
	}
	if in.HSNCode != nil {
		product.HSNCode = *in.HSNCode
	}
	if in.SerialNumber != nil {
		product.SerialNumber = *in.SerialNumber
	}
	if in.Warranty != nil {
		product.Warranty = *in.Warranty
	}
	if in.Model != nil {
		product.Model = *in.Model
	}
	if in.Branch != nil {
		product.Branch = *in.Branch
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns a paginated catalog slice.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListLowStock returns active products at or below their minimum stock.
func (uc *ProductUseCase) ListLowStock() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListLowStock()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete removes a product by ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand,
		Category:     p.Category,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Unit:         p.Unit,
		Status:       p.Status,
		GSTRate:      p.GSTRate,
		HSNCode:      p.HSNCode,
		SerialNumber: p.SerialNumber,
		Warranty:     p.Warranty,
		Model:        p.Model,
		Branch:       p.Branch,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
