package repositories

import (
	"errors"

	"gudang/internal/models"
)

// ErrProductNotFound is returned when an id does not resolve to a product.
// Callers check for it with errors.Is.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
