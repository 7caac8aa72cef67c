package onboarding

import (
	"go-onboarding/internal/authz"
	"go-onboarding/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	ob := r.Group("/onboarding")
	ob.Use(middleware.AuthMiddleware())
	{
		ob.GET("/progress/me", handler.GetMyProgress)
		ob.GET("/progress/:userId", handler.GetProgress)
		ob.GET("/progress/:userId/hr",
			middleware.RequireRoles(authz.RoleHR),
			handler.GetProgress,
		)
		ob.POST("/progress/:userId",
			middleware.RequireRoles(authz.RoleSupervisor, authz.RoleManager, authz.RoleHR),
			handler.InitiateJourney,
		)
		ob.PUT("/progress/:userId/advance",
			middleware.RequireRoles(authz.RoleSupervisor),
			handler.AdvancePhase,
		)
		ob.PUT("/progress/:userId/advance/hr",
			middleware.RequireRoles(authz.RoleHR),
			handler.AdvancePhase,
		)

		ob.GET("/stages/:stage/tasks", handler.ListStageTasks)

		ob.PUT("/tasks/:taskId/complete",
			middleware.RequireRoles(authz.RoleSupervisor, authz.RoleHR),
			handler.ToggleTaskCompletion,
		)
		ob.PUT("/tasks/:taskId/validate",
			middleware.RequireRoles(authz.RoleHR),
			handler.ValidateTask,
		)
		ob.PUT("/tasks/:taskId/status",
			middleware.RequireRoles(authz.RoleSupervisor, authz.RoleHR),
			handler.UpdateTaskStatus,
		)

		ob.POST("/:userId/reset",
			middleware.RequireRoles(authz.RoleHR),
			handler.ResetJourney,
		)
	}
}
