package feedback

import (
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	fb := r.Group("/feedback")
	fb.Use(middleware.AuthMiddleware())
	{
		fb.POST("", handler.Submit)
		fb.GET("/:userId", handler.ListForUser)
	}
}
