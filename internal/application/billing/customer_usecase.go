package billing

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vyapari/billing-api/internal/application/dto"
	"github.com/vyapari/billing-api/internal/domain"
	"github.com/vyapari/billing-api/internal/domain/entity"
	"github.com/vyapari/billing-api/internal/domain/repository"
	"github.com/vyapari/billing-api/pkg/validate"
)

// CustomerUseCase handles the customer directory. Purchase totals on the
// customer are maintained by invoice creation, never through this use case.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

func (uc *CustomerUseCase) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.ErrInvalidInput
	}

	phone := strings.TrimSpace(req.Phone)
	existing, err := uc.customerRepo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	customerType := req.CustomerType
	if customerType == "" {
		customerType = entity.CustomerTypeRetail
	}

	customer := &entity.Customer{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(req.Name),
		Phone:          phone,
		Address:        req.Address,
		Email:          req.Email,
		GSTIN:          strings.ToUpper(strings.TrimSpace(req.GSTIN)),
		CustomerType:   customerType,
		Status:         "active",
		TotalPurchases: decimal.Zero,
	}

	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := validate.Struct(req); err != nil {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		customer.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != customer.Phone {
			existing, err := uc.customerRepo.GetByPhone(phone)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != customer.ID {
				return nil, domain.ErrDuplicate
			}
		}
		customer.Phone = phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.GSTIN != nil {
		customer.GSTIN = strings.ToUpper(strings.TrimSpace(*req.GSTIN))
	}
	if req.CustomerType != nil {
		customer.CustomerType = *req.CustomerType
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}

	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	customers, err := uc.customerRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.customerRepo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Phone:            c.Phone,
		Address:          c.Address,
		Email:            c.Email,
		GSTIN:            c.GSTIN,
		CustomerType:     c.CustomerType,
		Status:           c.Status,
		TotalPurchases:   c.TotalPurchases,
		TotalOrders:      c.TotalOrders,
		LastPurchaseDate: c.LastPurchaseDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
