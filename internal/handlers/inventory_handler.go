package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/pkg/apierrors"
	"gudang/pkg/validation"
)

// InventoryHandler handles HTTP requests for the inventory ledger. All
// routes are keyed by productId, mirroring the service layer.
type InventoryHandler struct {
	service  *services.InventoryService
	validate *validation.Validator
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService, validate *validation.Validator) *InventoryHandler {
	return &InventoryHandler{
		service:  service,
		validate: validate,
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Get("/", h.HandleGetAllInventory)
	inventoryRoutes.Post("/", h.HandleCreateInventory)
	inventoryRoutes.Post("/increase/:id", h.HandleIncreaseQuantity)
	inventoryRoutes.Post("/decrease/:id", h.HandleDecreaseQuantity)
	inventoryRoutes.Get("/:id", h.HandleGetInventoryByProductID)
	inventoryRoutes.Delete("/:id", h.HandleDeleteInventory)
}

// HandleGetAllInventory retrieves all inventory records.
func (h *InventoryHandler) HandleGetAllInventory(c *fiber.Ctx) error {
	records, err := h.service.GetAllInventory()
	if err != nil {
		log.Printf("Error getting all inventory records: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve inventory",
			"error":   err.Error(),
		})
	}
	return c.JSON(records)
}

// HandleGetInventoryByProductID retrieves the inventory record for a
// productId, or 404 with an empty body.
func (h *InventoryHandler) HandleGetInventoryByProductID(c *fiber.Ctx) error {
	productID := c.Params("id")
	inventory, err := h.service.GetInventoryByProductID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrInventoryNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error getting inventory for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve inventory",
			"error":   err.Error(),
		})
	}
	return c.JSON(inventory)
}

// HandleCreateInventory creates a stock record. A productId that does not
// pass the existence check is refused with a 400, indistinguishable from the
// product service being unreachable.
func (h *InventoryHandler) HandleCreateInventory(c *fiber.Ctx) error {
	var req models.CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create inventory body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(apierrors.MalformedBody(err))
	}

	if fieldErrors := h.validate.Struct(req); len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(apierrors.ValidationFailed(fieldErrors))
	}

	inventory, err := h.service.CreateInventory(req)
	if err != nil {
		if errors.Is(err, services.ErrProductCheckFailed) {
			return c.Status(fiber.StatusBadRequest).JSON(apierrors.ValidationFailed(map[string]string{
				"productId": "product does not exist or the product service is unavailable",
			}))
		}
		log.Printf("Error creating inventory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create inventory record",
			"error":   err.Error(),
		})
	}

	c.Location(fmt.Sprintf("/api/inventory/%s", inventory.ProductID))
	return c.Status(fiber.StatusCreated).JSON(inventory)
}

// HandleIncreaseQuantity adds the posted quantity to the stock of a
// productId.
func (h *InventoryHandler) HandleIncreaseQuantity(c *fiber.Ctx) error {
	return h.handleQuantityChange(c, h.service.IncreaseQuantity)
}

// HandleDecreaseQuantity subtracts the posted quantity from the stock of a
// productId. No floor applies; stock may go negative.
func (h *InventoryHandler) HandleDecreaseQuantity(c *fiber.Ctx) error {
	return h.handleQuantityChange(c, h.service.DecreaseQuantity)
}

func (h *InventoryHandler) handleQuantityChange(c *fiber.Ctx, mutate func(string, int) (*models.Inventory, error)) error {
	productID := c.Params("id")

	var req models.QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing quantity body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(apierrors.MalformedBody(err))
	}

	if fieldErrors := h.validate.Struct(req); len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(apierrors.ValidationFailed(fieldErrors))
	}

	inventory, err := mutate(productID, *req.Quantity)
	if err != nil {
		if errors.Is(err, repositories.ErrInventoryNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error changing quantity for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update inventory quantity",
			"error":   err.Error(),
		})
	}
	return c.JSON(inventory)
}

// HandleDeleteInventory removes the stock record for a productId. Responds
// 204 on success, 404 when the productId is unknown.
func (h *InventoryHandler) HandleDeleteInventory(c *fiber.Ctx) error {
	productID := c.Params("id")

	if err := h.service.DeleteInventory(productID); err != nil {
		if errors.Is(err, repositories.ErrInventoryNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		log.Printf("Error deleting inventory for product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete inventory record",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
