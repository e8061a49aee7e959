package services

import (
	"testing"

	"gin-foodcart/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedIfEmptyInsertsDefaults(t *testing.T) {
	env := setupEnv(t)
	repo := repositories.NewProductRepository(env.db)

	inserted, err := SeedIfEmpty(repo)
	require.NoError(t, err)
	assert.Equal(t, 6, inserted)

	products, err := repo.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 6)
	for i, want := range DefaultProducts() {
		assert.Equal(t, uint(i+1), products[i].ID)
		assert.Equal(t, want.Name, products[i].Name)
		assert.Equal(t, want.Category, products[i].Category)
	}
}

func TestSeedIfEmptyRunsOnce(t *testing.T) {
	env := setupEnv(t)
	repo := repositories.NewProductRepository(env.db)

	_, err := SeedIfEmpty(repo)
	require.NoError(t, err)
	inserted, err := SeedIfEmpty(repo)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	count, err := repo.CountProducts()
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)
}

func TestSeedIfEmptySkipsNonEmptyCatalog(t *testing.T) {
	env := setupEnv(t)
	repo := repositories.NewProductRepository(env.db)

	id, err := repo.InsertProduct("Cheeseburger", "Burgers")
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)

	inserted, err := SeedIfEmpty(repo)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	count, err := repo.CountProducts()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeedIfEmptyIsCommittedByCaller(t *testing.T) {
	env := setupEnv(t)

	err := env.db.Transaction(func(tx *gorm.DB) error {
		inserted, err := SeedIfEmpty(repositories.NewProductRepository(tx))
		require.NoError(t, err)
		assert.Equal(t, 6, inserted)
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	count, err := repositories.NewProductRepository(env.db).CountProducts()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
