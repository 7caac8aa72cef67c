package notification

import (
	"go-onboarding/internal/authz"
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/notifications")
	notifications.Use(
		middleware.AuthMiddleware(),
		middleware.RateLimitByUser(rate.Limit(5), 10),
	)
	{
		notifications.GET("", handler.List)
		notifications.PUT("/:id/read", handler.MarkRead)
		notifications.POST("",
			middleware.RequireRoles(authz.RoleHR),
			handler.Send,
		)
	}
}
