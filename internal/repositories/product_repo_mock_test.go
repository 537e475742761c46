package repositories_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

func TestMockProductRepository_CRUD(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	first := &models.Product{Name: "Laptop", Description: "High performance laptop", Price: decimal.RequireFromString("1200.00"), Sku: "LAP-001"}
	second := &models.Product{Name: "Keyboard", Description: "Mechanical keyboard", Price: decimal.RequireFromString("75.00"), Sku: "KEY-001"}

	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	// Listing preserves creation order, matching the SQL store.
	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "Laptop", all[0].Name)
	assert.Equal(t, "Keyboard", all[1].Name)

	found, err := repo.GetByID(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", found.Name)

	first.Name = "Laptop Pro"
	assert.NoError(t, repo.Update(first))
	found, err = repo.GetByID(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop Pro", found.Name)

	assert.NoError(t, repo.Delete(first.ID))
	_, err = repo.GetByID(first.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(first.ID), repositories.ErrProductNotFound)
	assert.ErrorIs(t, repo.Update(first), repositories.ErrProductNotFound)
}

func TestMockInventoryRepository_DuplicatesAndDelete(t *testing.T) {
	repo := repositories.NewMockInventoryRepository()

	// The higher id is inserted first; lookups must resolve by lowest id
	// regardless of insertion order, matching the SQL store.
	first := &models.Inventory{ID: "bbbb-1111", ProductID: "prod-1", Quantity: 10}
	second := &models.Inventory{ID: "aaaa-2222", ProductID: "prod-1", Quantity: 99}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))

	found, err := repo.GetByProductID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, "aaaa-2222", found.ID)
	assert.Equal(t, 99, found.Quantity)

	assert.NoError(t, repo.Delete("prod-1"))
	_, err = repo.GetByProductID("prod-1")
	assert.ErrorIs(t, err, repositories.ErrInventoryNotFound)
	assert.ErrorIs(t, repo.Delete("prod-1"), repositories.ErrInventoryNotFound)
}
