package routes

import (
	"gin-foodcart/controllers"
	"gin-foodcart/middlewares"
	"gin-foodcart/models"
	"gin-foodcart/repositories"
	"gin-foodcart/services"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps ルーター構築に必要な依存
type Deps struct {
	DB           *gorm.DB
	TokenDB      *gorm.DB
	Logger       *logrus.Logger
	TokenOptions services.TokenOptions
	CORSOrigins  []string
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default()
	}
	config := cors.DefaultConfig()
	config.AllowOrigins = origins
	config.AddAllowHeaders("Authorization")
	return cors.New(config)
}

func SetupRouter(deps Deps) *gin.Engine {
	productRepository := repositories.NewProductRepository(deps.DB)
	productService := services.NewProductService(productRepository)
	productController := controllers.NewProductController(productService, deps.Logger)

	authRepository := repositories.NewAuthRepository(deps.DB)
	tokenRepository := repositories.NewTokenRepository(deps.TokenDB)
	authService := services.NewAuthService(authRepository, tokenRepository, deps.TokenOptions, deps.Logger)
	authController := controllers.NewAuthController(authService, deps.Logger)

	cartRepository := repositories.NewCartRepository(deps.DB)
	cartService := services.NewCartService(cartRepository, deps.Logger)
	cartController := controllers.NewCartController(cartService, deps.Logger)

	requireAuth := middlewares.AuthMiddleware(authService, deps.Logger)
	requireAdmin := middlewares.RoleBasedAccessControl(deps.Logger, models.RoleAdmin)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.AccessLog(deps.Logger))
	r.Use(corsMiddleware(deps.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRouter := r.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	productRouter := r.Group("/products")
	productRouter.GET("", productController.FindAll)
	productRouter.POST("", requireAuth, requireAdmin, productController.Create)

	cartRouter := r.Group("/cart", requireAuth)
	cartRouter.GET("", cartController.FindMine)
	cartRouter.POST("", cartController.Add)

	userRouter := r.Group("/users", requireAuth, requireAdmin)
	userRouter.GET("", authController.ListUsers)

	return r
}
