package middleware

import (
	"go-onboarding/internal/authz"
	"go-onboarding/internal/shared/apperror"
	"go-onboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// CurrentActor rebuilds the authenticated principal from the gin context.
// The second return is false when auth context is missing or the role claim
// is outside the closed enum.
func CurrentActor(c *gin.Context) (authz.Actor, bool) {
	userID := c.GetString(CtxUserID)
	if userID == "" {
		return authz.Actor{}, false
	}

	role, err := authz.ParseRole(c.GetString(CtxRole))
	if err != nil {
		return authz.Actor{}, false
	}

	return authz.Actor{UserID: userID, Role: role}, true
}

// RequireRoles rejects the request with FORBIDDEN unless the actor's role is
// one of the allowed set. Fine-grained checks still run in the services; this
// is the coarse route-level guard.
func RequireRoles(allowed ...authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := CurrentActor(c)
		if !ok {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.ErrUnauthorized.Code, apperror.ErrUnauthorized.Message, nil)
			c.Abort()
			return
		}

		for _, role := range allowed {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
		c.Abort()
	}
}
