package assessment

import (
	"go-onboarding/internal/authz"
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	as := r.Group("/assessments")
	as.Use(middleware.AuthMiddleware())
	{
		// Idempotency runs after the auth and role gates so the cache key is
		// scoped to an authorized caller and replay can never skip them.
		if redisClient != nil {
			as.POST("",
				middleware.RequireRoles(authz.RoleHR),
				middleware.Idempotency(redisClient),
				handler.Open,
			)
		} else {
			as.POST("",
				middleware.RequireRoles(authz.RoleHR),
				handler.Open,
			)
		}
		as.GET("/:id", handler.Get)
		as.PUT("/:id/certificate", handler.UploadCertificate)
		as.PUT("/:id/assessment", handler.SubmitAssessment)
		as.PUT("/:id/decision", handler.SubmitDecision)
		as.PUT("/:id/hr-decision",
			middleware.RequireRoles(authz.RoleHR),
			handler.SubmitHRDecision,
		)
	}
}
