// Package controller provides the JSON API handlers for the heart-haven
// panel: authentication, student balances, the reward catalog, purchase,
// history and dashboard endpoints.
package controller

import (
	"net/http"

	"heart-haven/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers.
type BaseController struct{}

// checkLogin verifies authentication and aborts unauthorized requests.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
		c.Abort()
		return
	}
	c.Next()
}
