package middleware

import (
	"net/http"

	"heart-haven/database/model"
	"heart-haven/web/session"

	"github.com/gin-gonic/gin"
)

// RoleRequired lets the request through only when the logged-in user holds
// one of the given roles.
func RoleRequired(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := session.GetLoginUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "login required"})
			return
		}
		if !allowed[user.UserRole()] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
