package event

import (
	"go-onboarding/internal/authz"
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	ev := r.Group("/events")
	ev.Use(middleware.AuthMiddleware())
	{
		ev.POST("",
			middleware.RequireRoles(authz.RoleHR),
			handler.Create,
		)
		ev.GET("", handler.ListUpcoming)
	}
}
