package repositories

import (
	"gin-foodcart/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ICartRepository interface {
	InsertCartItem(userID uint, productID uint, quantity int) error
	ListCartItems(userID uint) ([]models.CartItem, error)
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

// InsertCartItem 同じ (userID, productID) が既にあれば数量をまとめずに制約違反を返す
func (r *CartRepository) InsertCartItem(userID uint, productID uint, quantity int) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	result := r.db.Omit(clause.Associations).Create(&item)
	if result.Error != nil {
		return translateError("insert cart item", result.Error)
	}
	return nil
}

func (r *CartRepository) ListCartItems(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	result := r.db.Where("user_id = ?", userID).Order("product_id").Find(&items)
	if result.Error != nil {
		return nil, translateError("list cart items", result.Error)
	}
	return items, nil
}
