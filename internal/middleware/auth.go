package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cindral-studio/cindral-api/internal/modules/serializer"
	"github.com/cindral-studio/cindral-api/internal/modules/service"
)

// AdminAuth guards mutating and confidential routes with the opaque bearer
// tokens issued by the auth service. The validated token is stored in the
// context so logout can revoke it.
func AdminAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || !auth.Verify(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		c.Set("token", token)
		c.Next()
	}
}
