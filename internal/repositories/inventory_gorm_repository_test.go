package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

func setupInventoryRepo(t *testing.T) *repositories.GORMInventoryRepository {
	t.Helper()

	// A named shared-cache database keeps every pooled connection on the
	// same in-memory store while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Inventory{}))

	return repositories.NewGORMInventoryRepository(db)
}

func TestGORMInventoryRepository_CreateAndGetByProductID(t *testing.T) {
	repo := setupInventoryRepo(t)

	inventory := &models.Inventory{ProductID: "prod-1", Quantity: 10, LastUpdate: time.Now()}
	assert.NoError(t, repo.Create(inventory))
	assert.NotEmpty(t, inventory.ID)

	found, err := repo.GetByProductID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, inventory.ID, found.ID)
	assert.Equal(t, 10, found.Quantity)

	_, err = repo.GetByProductID("unknown")
	assert.ErrorIs(t, err, repositories.ErrInventoryNotFound)
}

func TestGORMInventoryRepository_DuplicateProductIDsPermitted(t *testing.T) {
	repo := setupInventoryRepo(t)

	// Insert the higher id first so insertion order and id order disagree;
	// the lookup must resolve by id, not by whatever order rows landed in.
	first := &models.Inventory{ID: "bbbb-1111", ProductID: "prod-1", Quantity: 10, LastUpdate: time.Now()}
	second := &models.Inventory{ID: "aaaa-2222", ProductID: "prod-1", Quantity: 99, LastUpdate: time.Now()}
	assert.NoError(t, repo.Create(first))
	assert.NoError(t, repo.Create(second))

	// No uniqueness constraint exists; both rows land.
	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := repo.GetByProductID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, "aaaa-2222", found.ID)
	assert.Equal(t, 99, found.Quantity)
}

func TestGORMInventoryRepository_Update(t *testing.T) {
	repo := setupInventoryRepo(t)

	inventory := &models.Inventory{ProductID: "prod-1", Quantity: 10, LastUpdate: time.Now()}
	assert.NoError(t, repo.Create(inventory))

	inventory.Quantity = -3 // negative stock is not rejected by the store
	assert.NoError(t, repo.Update(inventory))

	found, err := repo.GetByProductID("prod-1")
	assert.NoError(t, err)
	assert.Equal(t, -3, found.Quantity)
}

func TestGORMInventoryRepository_Delete(t *testing.T) {
	repo := setupInventoryRepo(t)

	inventory := &models.Inventory{ProductID: "prod-1", Quantity: 10, LastUpdate: time.Now()}
	assert.NoError(t, repo.Create(inventory))

	assert.NoError(t, repo.Delete("prod-1"))

	_, err := repo.GetByProductID("prod-1")
	assert.ErrorIs(t, err, repositories.ErrInventoryNotFound)

	assert.ErrorIs(t, repo.Delete("prod-1"), repositories.ErrInventoryNotFound)
}
