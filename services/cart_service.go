package services

import (
	"gin-foodcart/constants"
	"gin-foodcart/models"
	"gin-foodcart/repositories"

	"github.com/sirupsen/logrus"
)

type ICartService interface {
	AddToCart(userID uint, productID uint, quantity int) (*models.CartItem, error)
	FindByUser(userID uint) ([]models.CartItem, error)
}

type CartService struct {
	repository repositories.ICartRepository
	logger     logrus.FieldLogger
}

func NewCartService(repository repositories.ICartRepository, logger logrus.FieldLogger) ICartService {
	return &CartService{repository: repository, logger: logger}
}

// AddToCart 同じ商品を2回追加すると数量は合算されず constants.ErrConstraintViolation になる
func (s *CartService) AddToCart(userID uint, productID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, constants.ErrInvalidQuantity
	}
	if err := s.repository.InsertCartItem(userID, productID, quantity); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	}).Info("cart item added")
	return &models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}, nil
}

func (s *CartService) FindByUser(userID uint) ([]models.CartItem, error) {
	return s.repository.ListCartItems(userID)
}
