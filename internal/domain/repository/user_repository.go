package repository

import "github.com/vyapari/billing-api/internal/domain/entity"

// UserRepository persistence port for operator accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}
