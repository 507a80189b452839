package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// securityError is the compact body used by the security layer, matching the
// entry-point/denied handlers of the previous stack.
type securityError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RequireAuthenticated aborts anonymous requests with 401.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUsuarioID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, securityError{
				Error:   "unauthorized",
				Message: "Token ausente ou inválido",
			})
			return
		}
		c.Next()
	}
}

// RequireRoles is the authorization policy: the caller must be authenticated
// and hold at least one of the given roles. Evaluated before the use case is
// ever invoked, independent of transport details.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUsuarioID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, securityError{
				Error:   "unauthorized",
				Message: "Token ausente ou inválido",
			})
			return
		}
		for _, role := range roles {
			if HasRole(c, role) {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, securityError{
			Error:   "forbidden",
			Message: "Acesso negado",
		})
	}
}
