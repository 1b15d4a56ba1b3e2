package middleware

import (
	"net/http"

	"heart-haven/web/session"

	"github.com/gin-gonic/gin"
)

// LoginRequired aborts with 401 unless the session carries a logged-in user.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "login required"})
			return
		}
		c.Next()
	}
}
