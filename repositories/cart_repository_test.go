package repositories

import (
	"testing"

	"gin-foodcart/constants"
	"gin-foodcart/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUserAndProduct(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()
	userID, err := NewAuthRepository(db).InsertUser("alice", "pw1", models.RoleClient)
	require.NoError(t, err)
	productID, err := NewProductRepository(db).InsertProduct("Cheeseburger", "Burgers")
	require.NoError(t, err)
	return userID, productID
}

func TestInsertCartItemAndList(t *testing.T) {
	db := setupDB(t)
	userID, productID := seedUserAndProduct(t, db)
	repo := NewCartRepository(db)

	require.NoError(t, repo.InsertCartItem(userID, productID, 2))

	items, err := repo.ListCartItems(userID)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{{UserID: 1, ProductID: 1, Quantity: 2}}, items)
}

func TestInsertCartItemDuplicatePairIsNotMerged(t *testing.T) {
	db := setupDB(t)
	userID, productID := seedUserAndProduct(t, db)
	repo := NewCartRepository(db)

	require.NoError(t, repo.InsertCartItem(userID, productID, 2))

	err := repo.InsertCartItem(userID, productID, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrConstraintViolation)

	items, err := repo.ListCartItems(userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestInsertCartItemUnknownProduct(t *testing.T) {
	db := setupDB(t)
	userID, _ := seedUserAndProduct(t, db)

	err := NewCartRepository(db).InsertCartItem(userID, 99, 1)

	assert.ErrorIs(t, err, constants.ErrConstraintViolation)
}

func TestInsertCartItemUnknownUser(t *testing.T) {
	db := setupDB(t)
	_, productID := seedUserAndProduct(t, db)

	err := NewCartRepository(db).InsertCartItem(99, productID, 1)

	assert.ErrorIs(t, err, constants.ErrConstraintViolation)
}

func TestListCartItemsOnlyForUser(t *testing.T) {
	db := setupDB(t)
	aliceID, burgerID := seedUserAndProduct(t, db)
	bobID, err := NewAuthRepository(db).InsertUser("bob", "pw2", models.RoleEmployee)
	require.NoError(t, err)
	colaID, err := NewProductRepository(db).InsertProduct("Cola", "Drinks")
	require.NoError(t, err)
	repo := NewCartRepository(db)

	require.NoError(t, repo.InsertCartItem(aliceID, burgerID, 1))
	require.NoError(t, repo.InsertCartItem(aliceID, colaID, 3))
	require.NoError(t, repo.InsertCartItem(bobID, burgerID, 4))

	items, err := repo.ListCartItems(aliceID)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{
		{UserID: aliceID, ProductID: burgerID, Quantity: 1},
		{UserID: aliceID, ProductID: colaID, Quantity: 3},
	}, items)

	items, err = repo.ListCartItems(99)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestConstraintsOnExistingSchema(t *testing.T) {
	db := setupDBWithExistingSchema(t)
	userID, productID := seedUserAndProduct(t, db)

	_, err := NewAuthRepository(db).InsertUser("alice", "other", models.RoleAdmin)
	assert.ErrorIs(t, err, constants.ErrConstraintViolation)

	repo := NewCartRepository(db)
	require.NoError(t, repo.InsertCartItem(userID, productID, 2))
	assert.ErrorIs(t, repo.InsertCartItem(userID, productID, 5), constants.ErrConstraintViolation)
	assert.ErrorIs(t, repo.InsertCartItem(userID, 99, 1), constants.ErrConstraintViolation)
}
