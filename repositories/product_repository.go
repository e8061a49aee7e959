package repositories

import (
	"gin-foodcart/models"

	"gorm.io/gorm"
)

type IProductRepository interface {
	InsertProduct(name string, category string) (uint, error)
	ListProducts() ([]models.Product, error)
	CountProducts() (int64, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) InsertProduct(name string, category string) (uint, error) {
	product := models.Product{Name: name, Category: category}
	result := r.db.Create(&product)
	if result.Error != nil {
		return 0, translateError("insert product", result.Error)
	}
	return product.ID, nil
}

func (r *ProductRepository) ListProducts() ([]models.Product, error) {
	var products []models.Product
	result := r.db.Order("product_id").Find(&products)
	if result.Error != nil {
		return nil, translateError("list products", result.Error)
	}
	return products, nil
}

func (r *ProductRepository) CountProducts() (int64, error) {
	var count int64
	result := r.db.Model(&models.Product{}).Count(&count)
	if result.Error != nil {
		return 0, translateError("count products", result.Error)
	}
	return count, nil
}
