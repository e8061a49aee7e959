package controllers

import (
	"errors"
	"gin-foodcart/constants"
	"gin-foodcart/dto"
	"gin-foodcart/models"
	"gin-foodcart/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	ListUsers(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
	logger  logrus.FieldLogger
}

func NewAuthController(service services.IAuthService, logger logrus.FieldLogger) IAuthController {
	return &AuthController{service: service, logger: logger}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.service.Register(input.Username, input.Password, models.Role(input.Role))
	if err != nil {
		switch {
		case errors.Is(err, constants.ErrInvalidRole):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, constants.ErrUsernameTaken):
			ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrUsernameExists})
		default:
			c.logger.WithError(err).Error("signup failed")
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		}
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"data": dto.NewUserResponse(*user)})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.Login(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, constants.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrLoginFailed})
			return
		}
		c.logger.WithError(err).Error("login failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}
	ctx.JSON(http.StatusOK, dto.LoginResponse{AccessToken: *token})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	if !strings.HasPrefix(header, "Bearer ") {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if err := c.service.Logout(tokenString); err != nil {
		if errors.Is(err, constants.ErrInvalidTokenType) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.logger.WithError(err).Error("logout failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (c *AuthController) ListUsers(ctx *gin.Context) {
	users, err := c.service.ListUsers()
	if err != nil {
		c.logger.WithError(err).Error("list users failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	res := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, dto.NewUserResponse(user))
	}
	ctx.JSON(http.StatusOK, gin.H{"data": res})
}
