package services

import (
	"gin-foodcart/models"
	"gin-foodcart/repositories"
)

type IProductService interface {
	FindAll() ([]models.Product, error)
	Create(name string, category string) (*models.Product, error)
}

type ProductService struct {
	repository repositories.IProductRepository
}

func NewProductService(repository repositories.IProductRepository) IProductService {
	return &ProductService{repository: repository}
}

func (s *ProductService) FindAll() ([]models.Product, error) {
	return s.repository.ListProducts()
}

func (s *ProductService) Create(name string, category string) (*models.Product, error) {
	productID, err := s.repository.InsertProduct(name, category)
	if err != nil {
		return nil, err
	}
	return &models.Product{ID: productID, Name: name, Category: category}, nil
}
