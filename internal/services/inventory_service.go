package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gudang/internal/clients"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/pkg/rabbitmq"
)

// ErrProductCheckFailed is returned when the product existence check refuses
// an inventory creation. The caller cannot distinguish an absent product
// from an unreachable product service.
var ErrProductCheckFailed = errors.New("product existence check failed")

// InventoryService orchestrates the product existence check, quantity
// arithmetic and persistence for inventory records.
type InventoryService struct {
	repo     repositories.InventoryRepository
	products clients.ProductChecker
	mqClient *rabbitmq.Client // optional, nil disables event publishing
}

// NewInventoryService creates a new InventoryService. mqClient may be nil;
// stock events are then skipped.
func NewInventoryService(repo repositories.InventoryRepository, products clients.ProductChecker, mqClient *rabbitmq.Client) *InventoryService {
	return &InventoryService{
		repo:     repo,
		products: products,
		mqClient: mqClient,
	}
}

// GetAllInventory retrieves all inventory records.
func (s *InventoryService) GetAllInventory() ([]models.Inventory, error) {
	return s.repo.GetAll()
}

// GetInventoryByProductID retrieves the inventory record for a productId.
func (s *InventoryService) GetInventoryByProductID(productID string) (*models.Inventory, error) {
	return s.repo.GetByProductID(productID)
}

// CreateInventory creates a stock record after confirming the productId
// resolves via the product API. This is check-then-act with no transactional
// guard: a product deleted between the check and the insert still yields a
// created record.
func (s *InventoryService) CreateInventory(req models.CreateInventoryRequest) (*models.Inventory, error) {
	if !s.products.ProductExists(req.ProductID) {
		return nil, fmt.Errorf("product %s: %w", req.ProductID, ErrProductCheckFailed)
	}

	inventory := &models.Inventory{
		ProductID:  req.ProductID,
		Quantity:   *req.Quantity,
		LastUpdate: time.Now(),
	}
	if err := s.repo.Create(inventory); err != nil {
		return nil, fmt.Errorf("failed to create inventory for product %s: %w", req.ProductID, err)
	}

	s.publishStockEvent("stock.created", inventory)
	return inventory, nil
}

// IncreaseQuantity adds delta to the stock of a productId and refreshes
// lastUpdate. The read-modify-write is not locked; concurrent mutations race
// with last-write-wins semantics.
func (s *InventoryService) IncreaseQuantity(productID string, delta int) (*models.Inventory, error) {
	inventory, err := s.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}

	inventory.Quantity += delta
	inventory.LastUpdate = time.Now()
	if err := s.repo.Update(inventory); err != nil {
		return nil, err
	}

	s.publishStockEvent("stock.increased", inventory)
	return inventory, nil
}

// DecreaseQuantity subtracts delta from the stock of a productId and
// refreshes lastUpdate. No floor is applied; quantity may go negative.
func (s *InventoryService) DecreaseQuantity(productID string, delta int) (*models.Inventory, error) {
	inventory, err := s.repo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}

	inventory.Quantity -= delta
	inventory.LastUpdate = time.Now()
	if err := s.repo.Update(inventory); err != nil {
		return nil, err
	}

	s.publishStockEvent("stock.decreased", inventory)
	return inventory, nil
}

// DeleteInventory removes the stock record(s) for a productId permanently.
func (s *InventoryService) DeleteInventory(productID string) error {
	return s.repo.Delete(productID)
}

// publishStockEvent publishes a stock-change event when a broker is
// configured. Publishing is best-effort: failures are logged and never fail
// the triggering request.
func (s *InventoryService) publishStockEvent(event string, inventory *models.Inventory) {
	if s.mqClient == nil {
		return
	}

	payload := map[string]interface{}{
		"event":       event,
		"inventoryId": inventory.ID,
		"productId":   inventory.ProductID,
		"quantity":    inventory.Quantity,
		"lastUpdate":  inventory.LastUpdate,
	}
	if err := s.mqClient.PublishStockEvent(payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, inventory.ProductID, err)
	}
}
