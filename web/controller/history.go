package controller

import (
	"heart-haven/web/service"
	"heart-haven/web/session"

	"github.com/gin-gonic/gin"
)

// HistoryController serves the activity trail: the full trail for admins,
// the caller's own entries for any logged-in user.
type HistoryController struct {
	historyService *service.HistoryService
}

func NewHistoryController(g *gin.RouterGroup, adminGroup *gin.RouterGroup, historyService *service.HistoryService) *HistoryController {
	a := &HistoryController{historyService: historyService}

	g.GET("/history/me", a.mine)
	adminGroup.GET("/history", a.all)
	adminGroup.GET("/history/:userId", a.forUser)

	return a
}

func (a *HistoryController) all(c *gin.Context) {
	entries, err := a.historyService.All()
	jsonObj(c, entries, err)
}

func (a *HistoryController) forUser(c *gin.Context) {
	entries, err := a.historyService.ForUser(c.Param("userId"))
	jsonObj(c, entries, err)
}

func (a *HistoryController) mine(c *gin.Context) {
	user := session.GetLoginUser(c)
	entries, err := a.historyService.ForUser(user.UserId())
	jsonObj(c, entries, err)
}
