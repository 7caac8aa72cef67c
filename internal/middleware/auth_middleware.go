package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"go-onboarding/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys populated by AuthMiddleware. Token issuance is handled by the
// external auth service; this middleware only verifies and extracts.
const (
	CtxUserID       = "user_id"
	CtxRole         = "role"
	CtxSupervisorID = "supervisor_id"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortUnauthorized(c, "UNAUTHORIZED", "Token not found")
			return
		}

		token, err := jwt.Parse(tokenString,
			func(t *jwt.Token) (any, error) {
				return []byte(os.Getenv("JWT_SECRET")), nil
			},
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		)
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "TOKEN_EXPIRED", "Token has expired")
				return
			}
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid token claims")
			return
		}

		userID, _ := claims["user_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || role == "" {
			abortUnauthorized(c, "INVALID_TOKEN", "Token is missing identity claims")
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, role)
		if supervisorID, ok := claims["supervisor_id"].(string); ok {
			c.Set(CtxSupervisorID, supervisorID)
		}

		c.Next()
	}
}

// bearerToken reads the Authorization header, falling back to the
// access_token cookie for browser clients.
func bearerToken(c *gin.Context) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context, code, message string) {
	response.Error(c, http.StatusUnauthorized, code, message, nil)
	c.Abort()
}
