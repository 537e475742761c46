package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"gudang/internal/models"
)

// MockInventoryRepository is an in-memory implementation of
// InventoryRepository used when no database is configured. Records are kept
// in creation order; productId lookups resolve duplicates to the lowest id
// the same way the SQL store does.
type MockInventoryRepository struct {
	records []models.Inventory
	mu      sync.RWMutex
}

// NewMockInventoryRepository creates a new instance of MockInventoryRepository.
func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{}
}

// GetAll returns all inventory records in creation order.
func (r *MockInventoryRepository) GetAll() ([]models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recordList := make([]models.Inventory, len(r.records))
	copy(recordList, r.records)
	return recordList, nil
}

// GetByProductID returns the inventory record for a productId, resolving
// duplicates to the row with the lowest id.
func (r *MockInventoryRepository) GetByProductID(productID string) (*models.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var match *models.Inventory
	for i := range r.records {
		rec := &r.records[i]
		if rec.ProductID != productID {
			continue
		}
		if match == nil || rec.ID < match.ID {
			match = rec
		}
	}
	if match == nil {
		return nil, fmt.Errorf("inventory for product %s: %w", productID, ErrInventoryNotFound)
	}
	inventory := *match
	return &inventory, nil
}

// Create adds a new inventory record, assigning a fresh UUID when none is set.
func (r *MockInventoryRepository) Create(inventory *models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inventory.ID == "" {
		inventory.ID = uuid.New().String()
	}
	r.records = append(r.records, *inventory)
	return nil
}

// Update modifies an existing inventory record, matched by its internal id.
func (r *MockInventoryRepository) Update(inventory *models.Inventory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID == inventory.ID {
			r.records[i] = *inventory
			return nil
		}
	}
	return fmt.Errorf("inventory record %s: %w", inventory.ID, ErrInventoryNotFound)
}

// Delete removes all inventory records for a productId.
func (r *MockInventoryRepository) Delete(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.records[:0]
	removed := false
	for _, rec := range r.records {
		if rec.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	if !removed {
		return fmt.Errorf("inventory for product %s: %w", productID, ErrInventoryNotFound)
	}
	return nil
}
