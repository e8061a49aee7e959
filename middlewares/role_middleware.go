package middlewares

import (
	"gin-foodcart/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア
// AuthMiddlewareの後に使用することを想定（ctxに"user"が設定されている必要がある）
func RoleBasedAccessControl(logger logrus.FieldLogger, allowedRoles ...models.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// トークンのロール情報ではなく、データベースのusersテーブルのroleカラムを使用する
		// ロールは登録時の値がそのまま保存されているので完全一致で比較する
		for _, allowedRole := range allowedRoles {
			if userModel.Role == allowedRole {
				ctx.Next()
				return
			}
		}

		logger.WithFields(logrus.Fields{
			"user_id":       userModel.ID,
			"role":          userModel.Role,
			"allowed_roles": allowedRoles,
		}).Warn("access denied")
		ctx.AbortWithStatus(http.StatusForbidden)
	}
}
