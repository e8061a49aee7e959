package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDKey = "request_id"

// RequestID リクエストごとに一意なIDを付与し、レスポンスヘッダにも返す
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(RequestIDKey, id)
		ctx.Header("X-Request-ID", id)
		ctx.Next()
	}
}

// AccessLog gin.Logger の代わりにlogrusでアクセスログを出す
func AccessLog(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		fields := logrus.Fields{
			"request_id": ctx.GetString(RequestIDKey),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"latency":    time.Since(start).String(),
		}
		if userID, ok := ctx.Get(UserIDKey); ok {
			fields[UserIDKey] = userID
		}
		logger.WithFields(fields).Info("request")
	}
}
