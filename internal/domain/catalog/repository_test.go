package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"swippe/internal/database"
)

func setupRepo(t *testing.T) Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:catalog_repo_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)
	require.NoError(t, db.AutoMigrate(&Product{}))

	products := []Product{
		{Name: "Milk", Brand: "Amul", SalePrice: 60, Category: "Dairy", Rating: 4.5},
		{Name: "Cheese", Brand: "Amul", SalePrice: 120, Category: "Dairy", Rating: 4.1},
		{Name: "Butter", Brand: "Mother Dairy", SalePrice: 55, Category: "Dairy", Rating: 3.9},
		{Name: "Bread", Brand: "Britannia", SalePrice: 45, Category: "Bakery", Rating: 4.2},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	return NewRepository(db)
}

func TestRepository_GetPrice(t *testing.T) {
	repo := setupRepo(t)

	price, err := repo.GetPrice(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, 60.0, *price)

	// Missing product is a nil price, not an error.
	price, err = repo.GetPrice(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, price)
}

func TestRepository_List(t *testing.T) {
	repo := setupRepo(t)

	all, err := repo.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Milk", all[0].Name) // best rated first

	dairy, err := repo.List(context.Background(), ListFilter{Category: "Dairy"})
	require.NoError(t, err)
	assert.Len(t, dairy, 3)

	amul, err := repo.List(context.Background(), ListFilter{Brand: "Amul"})
	require.NoError(t, err)
	assert.Len(t, amul, 2)

	// Search matches name or brand.
	found, err := repo.List(context.Background(), ListFilter{Search: "brit"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Bread", found[0].Name)
}

func TestRepository_Related(t *testing.T) {
	repo := setupRepo(t)

	related, err := repo.Related(context.Background(), "Dairy", 1, 8)
	require.NoError(t, err)
	require.Len(t, related, 2)
	for _, p := range related {
		assert.NotEqual(t, int64(1), p.ID)
		assert.Equal(t, "Dairy", p.Category)
	}
}

func TestRepository_Facets(t *testing.T) {
	repo := setupRepo(t)

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bakery", "Dairy"}, categories)

	brands, err := repo.Brands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Amul", "Britannia", "Mother Dairy"}, brands)
}
