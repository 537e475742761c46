package repositories

import (
	"errors"

	"gudang/internal/models"
)

// ErrInventoryNotFound is returned when a productId does not resolve to an
// inventory record.
var ErrInventoryNotFound = errors.New("inventory record not found")

// InventoryRepository defines the interface for inventory data access.
// All lookups are keyed by productId, not by the internal record id.
type InventoryRepository interface {
	GetAll() ([]models.Inventory, error)
	GetByProductID(productID string) (*models.Inventory, error)
	Create(inventory *models.Inventory) error
	Update(inventory *models.Inventory) error
	Delete(productID string) error
}
