package controllers

import (
	"errors"
	"gin-foodcart/constants"
	"gin-foodcart/dto"
	"gin-foodcart/models"
	"gin-foodcart/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ICartController interface {
	FindMine(ctx *gin.Context)
	Add(ctx *gin.Context)
}

type CartController struct {
	service services.ICartService
	logger  logrus.FieldLogger
}

func NewCartController(service services.ICartService, logger logrus.FieldLogger) ICartController {
	return &CartController{service: service, logger: logger}
}

func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	userModel, ok := user.(*models.User)
	return userModel, ok
}

func (c *CartController) FindMine(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	items, err := c.service.FindByUser(user.ID)
	if err != nil {
		c.logger.WithError(err).Error("list cart failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": items})
}

func (c *CartController) Add(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.AddCartItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	item, err := c.service.AddToCart(user.ID, input.ProductID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, constants.ErrInvalidQuantity):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, constants.ErrConstraintViolation):
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrCartItemConflict})
		default:
			c.logger.WithError(err).Error("add to cart failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": item})
}
