package models

import "github.com/shopspring/decimal"

// Product represents a product in the catalog. Callers that serve products
// over HTTP set decimal.MarshalJSONWithoutQuotes so the price marshals as a
// JSON number; see cmd/productservice.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string          `json:"name" gorm:"type:varchar(100)"`
	Description string          `json:"description" gorm:"type:varchar(500)"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Sku         string          `json:"sku" gorm:"type:varchar(100)"`
}

// CreateProductRequest is the payload for creating a product.
// All fields are mandatory; violations are collected per field.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,notblank,min=3"`
	Description string           `json:"description" validate:"required,notblank,min=3"`
	Price       *decimal.Decimal `json:"price" validate:"required,gt=0"`
	Sku         string           `json:"sku" validate:"required,notblank,min=3"`
}

// UpdateProductRequest carries a partial update. Nil fields keep the
// stored value.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Sku         *string          `json:"sku"`
}
