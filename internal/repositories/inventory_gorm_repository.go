package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gudang/internal/models"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// GetAll retrieves all inventory records in store order.
func (r *GORMInventoryRepository) GetAll() ([]models.Inventory, error) {
	var records []models.Inventory
	if err := r.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get all inventory records: %w", err)
	}
	return records, nil
}

// GetByProductID retrieves the inventory record for a productId. There is
// no uniqueness constraint on productId; if duplicates exist the row with
// the lowest id wins.
func (r *GORMInventoryRepository) GetByProductID(productID string) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := r.db.Order("id").Take(&inventory, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory for product %s: %w", productID, ErrInventoryNotFound)
		}
		return nil, fmt.Errorf("failed to get inventory for product %s: %w", productID, err)
	}
	return &inventory, nil
}

// Create inserts a new inventory record, assigning a fresh UUID when none
// is set.
func (r *GORMInventoryRepository) Create(inventory *models.Inventory) error {
	if inventory.ID == "" {
		inventory.ID = uuid.New().String()
	}
	if err := r.db.Create(inventory).Error; err != nil {
		return fmt.Errorf("failed to create inventory record: %w", err)
	}
	return nil
}

// Update persists all fields of an existing inventory record.
func (r *GORMInventoryRepository) Update(inventory *models.Inventory) error {
	res := r.db.Save(inventory)
	if res.Error != nil {
		return fmt.Errorf("failed to update inventory record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inventory record %s: %w", inventory.ID, ErrInventoryNotFound)
	}
	return nil
}

// Delete removes the inventory rows for a productId permanently.
func (r *GORMInventoryRepository) Delete(productID string) error {
	res := r.db.Delete(&models.Inventory{}, "product_id = ?", productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete inventory for product %s: %w", productID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inventory for product %s: %w", productID, ErrInventoryNotFound)
	}
	return nil
}
