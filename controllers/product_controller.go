package controllers

import (
	"gin-foodcart/constants"
	"gin-foodcart/dto"
	"gin-foodcart/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IProductController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
}

type ProductController struct {
	service services.IProductService
	logger  logrus.FieldLogger
}

func NewProductController(service services.IProductService, logger logrus.FieldLogger) IProductController {
	return &ProductController{service: service, logger: logger}
}

func (c *ProductController) FindAll(ctx *gin.Context) {
	products, err := c.service.FindAll()
	if err != nil {
		c.logger.WithError(err).Error("list products failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": products})
}

func (c *ProductController) Create(ctx *gin.Context) {
	var input dto.CreateProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	product, err := c.service.Create(input.Name, input.Category)
	if err != nil {
		c.logger.WithError(err).Error("create product failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"data": product})
}
