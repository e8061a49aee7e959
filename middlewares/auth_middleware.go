package middlewares

import (
	"gin-foodcart/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const UserIDKey = "user_id"

// AuthMiddleware Bearerトークンからユーザーを取得し、ctxに"user"として設定する
func AuthMiddleware(authService services.IAuthService, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			logger.WithFields(logrus.Fields{
				"request_id": ctx.GetString(RequestIDKey),
				"reason":     err.Error(),
			}).Debug("token rejected")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set("user", user)
		ctx.Set(UserIDKey, user.ID)

		ctx.Next()
	}
}
