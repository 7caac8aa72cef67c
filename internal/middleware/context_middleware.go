package middleware

import (
	"go-onboarding/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger plus request/user ids to the
// underlying context so services can log with tracing fields. Runs after
// AuthMiddleware on authenticated groups so the user id claim is available.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		fields := []zap.Field{zap.String("request_id", rid)}
		uid := c.GetString(CtxUserID)
		if uid != "" {
			fields = append(fields, zap.String("user_id", uid))
		}

		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, logger.With(fields...))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
