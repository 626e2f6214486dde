package middleware

import (
	"net/http"
	"strings"

	"grandstay-backend/models"
	"grandstay-backend/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// RequireAuth validates the bearer token and stores the resolved user on the
// context. 401 here is the dashboard's signal to force re-login.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := ""
		if strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}

		user, err := auth.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "session expired"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole allows only the listed roles past. Admins always pass.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "session expired"})
			return
		}
		if user.Role == models.RoleAdmin {
			c.Next()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "insufficient role"})
	}
}

// CurrentUser returns the authenticated user, or nil outside RequireAuth.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
