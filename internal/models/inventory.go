package models

import "time"

// Inventory represents the stock record for a product. The productId column
// is not backed by a foreign key; it is only validated against the product
// service when the record is created. Nothing prevents multiple rows for the
// same productId; lookups resolve duplicates to the row with the lowest id.
type Inventory struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID  string    `json:"productId" gorm:"index;type:varchar(36)"`
	Quantity   int       `json:"quantity"`
	LastUpdate time.Time `json:"lastUpdate"`
}

// CreateInventoryRequest is the payload for creating an inventory record.
// Quantity is a pointer so that an explicit 0 can be told apart from an
// absent field.
type CreateInventoryRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,gte=0"`
}

// QuantityRequest is the payload for the increase/decrease endpoints.
type QuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gt=0"`
}
